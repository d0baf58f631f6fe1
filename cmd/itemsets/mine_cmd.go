package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/itemsets/fpgrowth"
	"github.com/katalvlaran/itemsets/transactions"
	"github.com/katalvlaran/itemsets/transactions/csv"
	"github.com/katalvlaran/itemsets/transactions/sqlset"
)

// defaultQuery reads (transaction_id, item) pairs when --query is not given.
const defaultQuery = `SELECT transaction_id, item FROM transactions ORDER BY transaction_id`

// Exit codes per failing stage.
const (
	exitConfig = 1
	exitInput  = 2
	exitMine   = 3
	exitOutput = 4
)

type mineCmdConfig struct {
	*rootCmdConfig
	envErr       error
	input        string
	output       string
	format       string
	outputFormat string
	query        string
	minSupport   float64
	maxLen       int
	workers      int
	ids          bool
}

// dataset is the mining input in either of its two shapes.
type dataset struct {
	records [][]string          // basket records, or
	matrix  *transactions.Dense // a one-hot matrix
	vocab   *transactions.Vocabulary
}

func mineCmd(rootConfig *rootCmdConfig, env envDefaults, envErr error) *cobra.Command {
	config := &mineCmdConfig{rootCmdConfig: rootConfig, envErr: envErr}
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine the frequent itemsets of a set of transactions",
		Long:  `Mine every itemset whose support (share of transactions containing all its items) is at least min-support.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return fail(exitConfig, err)
			}
			log, err := newLogger(cmd.ErrOrStderr(), config.logLevel, config.verbose)
			if err != nil {
				return fail(exitConfig, fmt.Errorf("parsing log level: %v", err))
			}
			data, err := config.dataset(cmd.Context(), log)
			if err != nil {
				return fail(exitInput, err)
			}
			log.Infof("Mining itemsets with support >= %v ...", config.minSupport)
			res, err := config.mine(cmd.Context(), log, data)
			if err != nil {
				return fail(exitMine, fmt.Errorf("mining itemsets: %w", err))
			}
			log.WithFields(logrus.Fields{
				"transactions": res.Transactions,
				"min_count":    res.MinCount,
				"itemsets":     res.Len(),
			}).Info("Done")
			if config.ids {
				for i := range res.Itemsets {
					res.Itemsets[i].Labels = nil
				}
			}
			if err = config.writeOutput(cmd.OutOrStdout(), res); err != nil {
				return fail(exitOutput, err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the transactions (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the itemsets will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "baskets", "CSV layout: baskets (one transaction per row) or onehot (header of items over 0/1 cells)")
	cmd.PersistentFlags().StringVar(&(config.outputFormat), "output-format", env.OutputFormat, "json, yaml or table")
	cmd.PersistentFlags().StringVarP(&(config.query), "query", "q", defaultQuery, "SQL query returning (transaction_id, item) rows, for database inputs")
	cmd.PersistentFlags().Float64VarP(&(config.minSupport), "min-support", "s", env.MinSupport, "minimum support in (0, 1]")
	cmd.PersistentFlags().IntVar(&(config.maxLen), "max-len", env.MaxLen, "largest itemset size to report (defaults to 0: no limit)")
	cmd.PersistentFlags().IntVarP(&(config.workers), "workers", "w", env.Workers, "top-level branches mined concurrently")
	cmd.PersistentFlags().BoolVar(&(config.ids), "ids", false, "report item identifiers (column indices) instead of labels")
	return cmd
}

func (mcc *mineCmdConfig) Validate() error {
	if mcc.envErr != nil {
		return fmt.Errorf("reading environment: %v", mcc.envErr)
	}
	if !(mcc.minSupport > 0 && mcc.minSupport <= 1) {
		return fmt.Errorf("min-support must be in (0, 1], got %v", mcc.minSupport)
	}
	if mcc.maxLen < 0 {
		return fmt.Errorf("max-len must be >= 0, got %d", mcc.maxLen)
	}
	if mcc.workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", mcc.workers)
	}
	switch mcc.format {
	case "baskets", "onehot":
	default:
		return fmt.Errorf("unknown format %s", mcc.format)
	}
	if _, ok := writers[mcc.outputFormat]; !ok {
		return fmt.Errorf("unknown output format %s", mcc.outputFormat)
	}
	return nil
}

func (mcc *mineCmdConfig) dataset(ctx context.Context, log logrus.FieldLogger) (*dataset, error) {
	switch {
	case strings.HasPrefix(mcc.input, "postgres://"), strings.HasPrefix(mcc.input, "postgresql://"):
		log.Infof("Reading transactions from PostgreSQL database %s ...", mcc.input)
		return mcc.sqlDataset(ctx, "postgres")
	case strings.HasSuffix(mcc.input, ".db"):
		log.Infof("Reading transactions from SQLite3 file %s ...", mcc.input)
		return mcc.sqlDataset(ctx, "sqlite3")
	case mcc.input == "":
		log.Info("Reading transactions from STDIN ...")
	default:
		log.Infof("Reading transactions from %s ...", mcc.input)
	}
	if mcc.format == "onehot" {
		m, vocab, err := csv.ReadOneHotFromFilePath(mcc.input)
		if err != nil {
			return nil, err
		}
		return &dataset{matrix: m, vocab: vocab}, nil
	}
	records, err := csv.ReadBasketsFromFilePath(mcc.input)
	if err != nil {
		return nil, err
	}
	return &dataset{records: records}, nil
}

func (mcc *mineCmdConfig) sqlDataset(ctx context.Context, driver string) (*dataset, error) {
	db, err := sql.Open(driver, mcc.input)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %v", driver, err)
	}
	defer db.Close()
	records, err := sqlset.ReadBaskets(ctx, db, mcc.query)
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return &dataset{records: records}, nil
}

func (mcc *mineCmdConfig) mine(ctx context.Context, log logrus.FieldLogger, data *dataset) (*fpgrowth.Result, error) {
	opts := []fpgrowth.Option{
		fpgrowth.WithContext(ctx),
		fpgrowth.WithLogger(log),
		fpgrowth.WithWorkers(mcc.workers),
	}
	if mcc.maxLen > 0 {
		opts = append(opts, fpgrowth.WithMaxLen(mcc.maxLen))
	}
	if mcc.verbose {
		opts = append(opts, fpgrowth.WithVerbose())
	}
	if data.matrix != nil {
		return fpgrowth.Mine(data.matrix, mcc.minSupport, append(opts, fpgrowth.WithVocabulary(data.vocab))...)
	}
	return fpgrowth.MineBaskets(data.records, mcc.minSupport, opts...)
}

func (mcc *mineCmdConfig) writeOutput(stdout io.Writer, res *fpgrowth.Result) error {
	w := stdout
	if mcc.output != "" {
		f, err := os.Create(mcc.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return writers[mcc.outputFormat](w, res)
}
