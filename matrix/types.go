// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write surface shared by Dense and adapters.
// All methods are O(1) except Clone (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows (entities).
	Rows() int

	// Cols returns the number of columns (observations).
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange for invalid indices
	// and ErrNaNInf when the numeric policy rejects v.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
