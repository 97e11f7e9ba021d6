// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w) and tests
// check them via errors.Is. No exported function panics on user input
// except RawRowView, which mirrors gonum's contract.

package matrix

import "errors"

// Every message is prefixed with "matrix: " so log lines are easy to grep.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates that input rows have differing lengths.
	ErrNonRectangular = errors.New("matrix: rows have differing lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTooFewRows indicates fewer rows than an operation requires.
	ErrTooFewRows = errors.New("matrix: too few rows")
)
