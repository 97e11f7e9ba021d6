// SPDX-License-Identifier: MIT

package pairindex

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec operations.
var (
	// ErrTooFewRows indicates that fewer than two rows were given, so no pair exists.
	ErrTooFewRows = errors.New("pairindex: at least two rows are required")

	// ErrPatternOutOfRange indicates a pattern outside [0, MaxPairs(rows)).
	ErrPatternOutOfRange = errors.New("pairindex: pattern index out of range")

	// ErrInvalidPair indicates a pair with equal endpoints or an endpoint outside [0, rows).
	ErrInvalidPair = errors.New("pairindex: invalid row pair")

	// ErrNegativeRows indicates a negative row count.
	ErrNegativeRows = errors.New("pairindex: row count must be non-negative")
)

// Pair is an unordered row pair stored in canonical form R1 < R2.
type Pair struct {
	R1 int // lower row index
	R2 int // higher row index
}

// String renders the pair as "(r1,r2)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.R1, p.R2)
}

// codecErrorf attaches the operation name and its arguments to a sentinel.
func codecErrorf(op string, rows, arg int, err error) error {
	return fmt.Errorf("%s(rows=%d, %d): %w", op, rows, arg, err)
}
