// Package transactions supplies the normalized input of the frequent-itemset
// miners: a transactions × items presence matrix plus the vocabulary that maps
// column indices back to item labels.
//
// What:
//
//   - Matrix: read-only interface (Rows, Cols, At) any host table can satisfy.
//   - Dense: row-major 0/1 implementation with bounds-checked At/Set.
//   - Baskets: validating extraction of each transaction's present items.
//   - Vocabulary: immutable id ↔ label mapping.
//   - Encoder: raw records ([][]string) → Dense + Vocabulary.
//
// Errors:
//
// Every malformed-input condition wraps ErrInputShape:
//
//   - ErrNonBinary            cell is neither 0 nor 1
//   - ErrNonRectangular       rows of differing lengths
//   - ErrOutOfRange           index outside the matrix
//   - ErrInvalidDimensions    negative dimensions
//   - ErrUnknownItem          label or id missing from the vocabulary
//   - ErrDuplicateLabel       empty or repeated vocabulary label
//   - ErrVocabularyMismatch   vocabulary size differs from column count
//
// Readers for CSV files and SQL tables live in the csv and sqlset subpackages.
package transactions
