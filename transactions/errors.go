// SPDX-License-Identifier: MIT
// Package transactions: sentinel error set.
// Every input-shape failure wraps ErrInputShape so callers can match the whole
// category with errors.Is(err, ErrInputShape) and still distinguish the
// specific cause (ErrNonBinary, ErrNonRectangular, ...).

package transactions

import (
	"errors"
	"fmt"
)

// ErrInputShape is the category sentinel for malformed transaction input.
// It is never returned bare; every specific sentinel below wraps it.
var ErrInputShape = errors.New("transactions: invalid input shape")

var (
	// ErrNonBinary indicates a cell that is neither a presence (1) nor an absence (0) marker.
	ErrNonBinary = fmt.Errorf("transactions: value is not a presence indicator: %w", ErrInputShape)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("transactions: all rows must have the same length: %w", ErrInputShape)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = fmt.Errorf("transactions: index out of range: %w", ErrInputShape)

	// ErrInvalidDimensions indicates negative matrix dimensions.
	ErrInvalidDimensions = fmt.Errorf("transactions: dimensions must be >= 0: %w", ErrInputShape)

	// ErrUnknownItem indicates an item label or identifier missing from the vocabulary.
	ErrUnknownItem = fmt.Errorf("transactions: unknown item: %w", ErrInputShape)

	// ErrDuplicateLabel indicates a vocabulary built with a repeated or empty label.
	ErrDuplicateLabel = fmt.Errorf("transactions: duplicate or empty item label: %w", ErrInputShape)

	// ErrVocabularyMismatch indicates a vocabulary whose size differs from the matrix column count.
	ErrVocabularyMismatch = fmt.Errorf("transactions: vocabulary size does not match column count: %w", ErrInputShape)
)

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
