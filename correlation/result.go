// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/coexpr/matrix"
	"github.com/katalvlaran/coexpr/measure"
	"github.com/katalvlaran/coexpr/pairindex"
)

// Result is the outcome of one engine run.
//
// Values[p] holds the measure for the pair Index.Pair(p). Values and Index
// are written once by the engine and are read-only for consumers; only
// ExecutionTime may be set afterwards (SetExecutionTime).
type Result struct {
	// RunID is a random identifier for the run, also attached to its log
	// records as run_id.
	RunID string

	// Name identifies the measure that produced the values.
	Name string

	// Kind is the built-in measure kind, or 0 for custom measures.
	Kind measure.Kind

	// Values has one entry per pattern, in pattern order.
	Values []float64

	// Index maps every pattern to its row pair.
	Index *pairindex.Table

	// Mode is the execution mode used.
	Mode Mode

	// ExecutionTime is the duration of the pair loop when Timed is true.
	ExecutionTime time.Duration

	// Timed reports whether ExecutionTime was recorded.
	Timed bool
}

// PairValue is one (pattern, pair, value) triple of a Result.
type PairValue struct {
	Pattern int
	Pair    pairindex.Pair
	Value   float64
}

// Rows returns the number of matrix rows the result covers.
func (r *Result) Rows() int { return r.Index.Rows() }

// Len returns the number of pairs.
func (r *Result) Len() int { return len(r.Values) }

// SetExecutionTime records d as the run duration and marks the result timed.
func (r *Result) SetExecutionTime(d time.Duration) {
	r.ExecutionTime = d
	r.Timed = true
}

// Pair returns the row pair for pattern p.
// Errors: pairindex.ErrPatternOutOfRange.
func (r *Result) Pair(p int) (pairindex.Pair, error) {
	return r.Index.Pair(p)
}

// Value returns the measure for rows r1 and r2, in either order.
// Errors: pairindex.ErrInvalidPair for r1 == r2 or out-of-range rows.
func (r *Result) Value(r1, r2 int) (float64, error) {
	p, err := r.Index.Pattern(r1, r2)
	if err != nil {
		return 0, err
	}

	return r.Values[p], nil
}

// Above returns, in pattern order, every pair whose value is at least
// threshold. With absolute set, |value| is compared instead, which keeps
// strong negative associations. NaN values never pass.
// Complexity: O(P).
func (r *Result) Above(threshold float64, absolute bool) []PairValue {
	var out []PairValue
	for p, v := range r.Values {
		cmp := v
		if absolute {
			cmp = math.Abs(v)
		}
		if !(cmp >= threshold) {
			continue
		}
		pair, _ := r.Index.Pair(p)
		out = append(out, PairValue{Pattern: p, Pair: pair, Value: v})
	}

	return out
}

// Square expands the result into a symmetric rows×rows matrix with diag on
// the diagonal. Each measure has its own self-association (1 for Quadrant
// and ARI, the row entropy for MI), so the caller chooses it.
//
// The matrix accepts non-finite values, since custom measures may emit NaN.
// Complexity: O(rows²).
func (r *Result) Square(diag float64) (*matrix.Dense, error) {
	rows := r.Rows()
	sq, err := matrix.NewDense(rows, rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("Square(rows=%d): %w", rows, err)
	}
	for i := 0; i < rows; i++ {
		if err = sq.Set(i, i, diag); err != nil {
			return nil, err
		}
	}
	for p, v := range r.Values {
		pair, err := r.Index.Pair(p)
		if err != nil {
			return nil, err
		}
		if err = sq.Set(pair.R1, pair.R2, v); err != nil {
			return nil, err
		}
		if err = sq.Set(pair.R2, pair.R1, v); err != nil {
			return nil, err
		}
	}

	return sq, nil
}
