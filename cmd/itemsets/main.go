// Command itemsets mines frequent itemsets from CSV files, SQLite3 databases
// or PostgreSQL tables and writes them as JSON, YAML or a text table.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose  bool
	logLevel string
}

// exitError carries the process exit code of a failed stage.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error { return &exitError{code: code, err: err} }

func main() {
	if err := cliParser().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "itemsets",
		Short:         "itemsets is a tool to mine frequent itemsets",
		Long:          `A tool to find every set of items that appears together in at least a given share of your transactions, using FP-Growth`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	env, envErr := loadEnv()
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log every mining stage at debug level")
	rootCmd.PersistentFlags().StringVar(&(config.logLevel), "log-level", env.LogLevel, "logrus level: trace, debug, info, warn, error")
	rootCmd.AddCommand(versionCmd(), mineCmd(config, env, envErr))
	return rootCmd
}
