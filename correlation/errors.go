// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coexpr/matrix"
)

// Sentinel errors for engine runs.
var (
	// ErrNilMatrix indicates a nil input matrix. Same value as
	// matrix.ErrNilMatrix, which the input validators return.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrTooFewRows indicates fewer than two rows, so no pair exists. Same
	// value as matrix.ErrTooFewRows.
	ErrTooFewRows = matrix.ErrTooFewRows

	// ErrNilMeasure indicates RunMeasure was given a nil measure.
	ErrNilMeasure = errors.New("correlation: measure is nil")

	// ErrNotImplemented marks an execution mode that exists in the API but
	// has no implementation (Device).
	ErrNotImplemented = errors.New("correlation: execution mode not implemented")
)

// runErrorf tags an error with the entry point and measure name.
func runErrorf(op, name string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, name, err)
}
