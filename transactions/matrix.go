// Package transactions defines the transaction matrix consumed by the miners.
//
// What & Why:
//
//	A transaction matrix has one row per transaction and one column per item.
//	A cell holds 1 when the item is present in the transaction and 0 when it is
//	absent. Hosts may back it with any storage; miners only read it through
//	the Matrix interface and validate every cell before doing any work.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() performs bounds checking in O(1) time, returning an error on invalid indices.
package transactions

// Matrix is a read-only transactions × items presence table.
type Matrix interface {
	// Rows returns the number of transactions.
	Rows() int

	// Cols returns the number of items in the vocabulary.
	Cols() int

	// At returns the cell at (row, col).
	// Returns ErrOutOfRange for invalid indices.
	// Values other than 0 and 1 are rejected later by Baskets with ErrNonBinary.
	At(row, col int) (float64, error)
}
