// SPDX-License-Identifier: MIT

// Package transactions - Dense presence storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a compact row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the binary policy from a single place: only 0 and 1 are ever stored.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Items: O(c); Clone: O(r*c).

package transactions

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major presence matrix.
//   - r,c hold dimensions (transactions, items).
//   - data is a flat buffer of length r*c; every cell is 0 or 1.
type Dense struct {
	r, c int     // transaction and item counts (>=0)
	data []uint8 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix with every item absent.
// Zero rows (no transactions) and zero columns (empty vocabulary) are legal;
// negative dimensions return ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills: every item starts absent.
	return &Dense{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular slice of presence values.
// Stage 1 (Validate): equal row lengths, else ErrNonRectangular.
// Stage 2 (Execute): copy each cell through Set, which rejects non-binary values.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// FromBools builds a Dense from a rectangular boolean table.
// Complexity: O(r*c).
func FromBools(rows [][]bool) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
		for j, present := range row {
			if present {
				m.data[i*cols+j] = 1
			}
		}
	}

	return m, nil
}

// FromItemSets builds a Dense from transactions given as item identifiers in [0, numItems).
// Repeated identifiers inside one transaction are stored once.
// Returns ErrUnknownItem for identifiers outside the vocabulary.
// Complexity: O(r*numItems + total items).
func FromItemSets(sets [][]int, numItems int) (*Dense, error) {
	m, err := NewDense(len(sets), numItems)
	if err != nil {
		return nil, err
	}
	for i, set := range sets {
		for _, id := range set {
			if id < 0 || id >= numItems {
				return nil, fmt.Errorf("transaction %d item %d: %w", i, id, ErrUnknownItem)
			}
			m.data[i*numItems+id] = 1
		}
	}

	return m, nil
}

// Rows returns the number of transactions.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of items.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns 1 when item col is present in transaction row, 0 otherwise.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return float64(m.data[idx]), nil
}

// Set stores v at (row, col). v must be exactly 0 or 1, else ErrNonBinary.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	switch v {
	case 0:
		m.data[idx] = 0
	case 1:
		m.data[idx] = 1
	default:
		return denseErrorf(ctxSet, row, col, fmt.Errorf("%v: %w", v, ErrNonBinary))
	}

	return nil
}

// Items returns the ascending column indices present in transaction row.
// Complexity: O(c).
func (m *Dense) Items(row int) ([]int, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Items", row, 0, ErrOutOfRange)
	}
	items := make([]int, 0)
	base := row * m.c
	for j := 0; j < m.c; j++ {
		if m.data[base+j] == 1 {
			items = append(items, j)
		}
	}

	return items, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]uint8, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
