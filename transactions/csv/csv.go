/*
Package csv reads transactions from CSV streams in the two layouts the miners
accept: basket rows (one transaction per row, one item label per cell) and
one-hot tables (a header of item labels over 0/1 presence cells).
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/itemsets/transactions"
)

/*
ReadBaskets takes an io.Reader for a CSV stream and returns one record per
row, each holding the row's item labels.

Rows may have any number of cells. Cells are trimmed of surrounding spaces;
empty cells and the '?' placeholder are skipped. Blank lines are ignored.
*/
func ReadBaskets(reader io.Reader) ([][]string, error) {
	r := newReader(reader)
	records := [][]string{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading baskets: %w", err)
		}
		rec := make([]string, 0, len(row))
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" || cell == "?" {
				continue
			}
			rec = append(rec, cell)
		}
		records = append(records, rec)
	}

	return records, nil
}

/*
ReadOneHot takes an io.Reader for a CSV stream whose header names the items
and whose body rows mark item presence, and returns the presence matrix with
the vocabulary built from the header.

Accepted presence cells are 1, true and t; accepted absence cells are 0,
false, f, the empty cell and '?' (case-insensitive, surrounding spaces
ignored). Numeric cells equal to 0 or 1 (such as 1.0) are accepted too.
Any other cell returns transactions.ErrNonBinary and a row with a cell count
different from the header returns transactions.ErrNonRectangular, both
reporting the line.
*/
func ReadOneHot(reader io.Reader) (*transactions.Dense, *transactions.Vocabulary, error) {
	r := newReader(reader)
	header, err := r.Read()
	if err == io.EOF {
		vocab, _ := transactions.NewVocabulary(nil)
		m, _ := transactions.NewDense(0, 0)
		return m, vocab, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(h)
	}
	vocab, err := transactions.NewVocabulary(labels)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing header: %w", err)
	}

	rows := [][]float64{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading body: %w", err)
		}
		line, _ := r.FieldPos(0)
		if len(row) != len(labels) {
			return nil, nil, fmt.Errorf("line %d has %d cells, want %d: %w", line, len(row), len(labels), transactions.ErrNonRectangular)
		}
		values := make([]float64, len(row))
		for j, cell := range row {
			v, ok := parsePresence(cell)
			if !ok {
				return nil, nil, fmt.Errorf("line %d column %q: value %q: %w", line, labels[j], cell, transactions.ErrNonBinary)
			}
			values[j] = v
		}
		rows = append(rows, values)
	}

	m, err := transactions.NewDense(len(rows), len(labels))
	if err != nil {
		return nil, nil, err
	}
	for i, values := range rows {
		for j, v := range values {
			if err = m.Set(i, j, v); err != nil {
				return nil, nil, err
			}
		}
	}

	return m, vocab, nil
}

/*
ReadBasketsFromFilePath takes a filepath string, opens the file it points to
and uses ReadBaskets to return its records. An empty filepath reads from the
standard input.
*/
func ReadBasketsFromFilePath(filepath string) ([][]string, error) {
	f, err := openPath(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := ReadBaskets(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return records, err
}

/*
ReadOneHotFromFilePath is the one-hot counterpart of ReadBasketsFromFilePath.
*/
func ReadOneHotFromFilePath(filepath string) (*transactions.Dense, *transactions.Vocabulary, error) {
	f, err := openPath(filepath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	m, vocab, err := ReadOneHot(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return m, vocab, err
}

func openPath(filepath string) (*os.File, error) {
	if filepath == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return f, nil
}

func newReader(reader io.Reader) *csv.Reader {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r
}

// parsePresence maps a one-hot cell to 0 or 1.
func parsePresence(cell string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "true", "t":
		return 1, true
	case "0", "false", "f", "", "?":
		return 0, true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || (v != 0 && v != 1) {
		return 0, false
	}
	return v, true
}
