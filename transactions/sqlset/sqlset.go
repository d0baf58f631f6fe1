package sqlset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrColumns is returned when a query does not yield exactly two columns.
var ErrColumns = errors.New("sqlset: query must return (transaction_id, item) columns")

/*
ReadBaskets runs query with args on db and returns one record of item labels
per distinct transaction identifier.

Identifiers are compared by their text form, so integer and string keys both
work. NULL or blank items are skipped, which lets a LEFT JOIN keep
transactions without items as empty records; a NULL identifier is an error.
*/
func ReadBaskets(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([][]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}
	if len(cols) != 2 {
		return nil, fmt.Errorf("got %d columns %v: %w", len(cols), cols, ErrColumns)
	}

	records := [][]string{}
	index := make(map[string]int)
	for n := 1; rows.Next(); n++ {
		var tid, item sql.NullString
		if err = rows.Scan(&tid, &item); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", n, err)
		}
		if !tid.Valid {
			return nil, fmt.Errorf("row %d: NULL transaction id", n)
		}
		i, ok := index[tid.String]
		if !ok {
			i = len(records)
			index[tid.String] = i
			records = append(records, []string{})
		}
		label := strings.TrimSpace(item.String)
		if !item.Valid || label == "" {
			continue
		}
		records[i] = append(records[i], label)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return records, nil
}
