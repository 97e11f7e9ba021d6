// SPDX-License-Identifier: MIT

package measure

import "fmt"

// Measure computes one association value for a pair of rows.
//
// Contract:
//   - len(x) == len(y) > 0 and all values finite (the engine validates this).
//   - x and y are read-only views into the input matrix; Compute must not
//     modify or retain them.
//   - Compute must be safe for concurrent calls.
//   - Numeric degeneracies are absorbed into the returned value.
type Measure interface {
	// Name identifies the measure in results and logs.
	Name() string

	// Compute returns the association between x and y.
	Compute(x, y []float64) float64
}

// Kinded is implemented by the built-in measures so results can report
// which Kind produced them.
type Kinded interface {
	Kind() Kind
}

// Centered is implemented by measures that only read rows after each one
// has been shifted by its own mean. The engine centers the whole matrix once
// per run (matrix.CenterRows) and calls ComputeCentered on the shifted rows;
// ComputeCentered(cx, cy) must equal Compute(x, y) for the original rows.
type Centered interface {
	Measure

	// ComputeCentered returns the association of two mean-centered rows.
	ComputeCentered(cx, cy []float64) float64
}

// New returns the built-in measure for k.
// Errors: ErrUnknownKind.
func New(k Kind) (Measure, error) {
	switch k {
	case Quadrant:
		return QuadrantMeasure{}, nil
	case ARI:
		return ARIMeasure{}, nil
	case CC:
		return CCMeasure{}, nil
	case MI:
		return MIMeasure{}, nil
	default:
		return nil, fmt.Errorf("New(%v): %w", k, ErrUnknownKind)
	}
}

// Func adapts a plain function into a Measure.
type Func struct {
	name string
	fn   func(x, y []float64) float64
}

// NewFunc wraps fn as a Measure called name. It panics on a nil fn, which
// is a programmer error.
func NewFunc(name string, fn func(x, y []float64) float64) Func {
	if fn == nil {
		panic("measure: NewFunc: nil function")
	}

	return Func{name: name, fn: fn}
}

// Name returns the name given to NewFunc.
func (f Func) Name() string { return f.name }

// Compute calls the wrapped function.
func (f Func) Compute(x, y []float64) float64 { return f.fn(x, y) }

// comb2 is the number of unordered pairs among n items, n(n−1)/2, as float64
// so large sample counts do not overflow the products in ARI.
func comb2(n int) float64 {
	if n < 2 {
		return 0
	}
	f := float64(n)

	return f * (f - 1) / 2
}

// mismatched reports a contract violation that the built-ins turn into NaN.
func mismatched(x, y []float64) bool {
	return len(x) != len(y) || len(x) == 0
}
