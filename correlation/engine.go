// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coexpr/matrix"
	"github.com/katalvlaran/coexpr/measure"
	"github.com/katalvlaran/coexpr/pairindex"
)

const (
	opRun        = "Run"
	opRunMeasure = "RunMeasure"
)

// Run computes the built-in measure kind for every row pair of m.
//
// Implementation:
//   - Stage 1: resolve kind to a measure (measure.ErrUnknownKind).
//   - Stage 2: delegate to RunMeasure.
//
// Complexity:
//   - Time O(P · cost(measure)), Space O(P) with P = rows·(rows−1)/2.
func Run(m *matrix.Dense, kind measure.Kind, opts ...Option) (*Result, error) {
	ms, err := measure.New(kind)
	if err != nil {
		return nil, runErrorf(opRun, kind.String(), err)
	}

	return RunMeasure(m, ms, opts...)
}

// RunMeasure computes ms for every row pair of m and assembles a Result.
//
// Implementation:
//   - Stage 1 (Validate): non-nil measure and matrix, rows ≥ 2, finite
//     values, implemented mode. Any failure aborts before computing.
//   - Stage 2 (Execute): center the rows once if the measure is
//     measure.Centered, then fill Values in pattern order, sequentially or
//     in parallel chunks. This is the timed section.
//   - Stage 3 (Finalize): build the pattern → pair table and the Result.
//
// Errors:
//   - ErrNilMeasure, ErrNilMatrix, ErrTooFewRows, ErrNotImplemented,
//     wrapped matrix.ErrNaNInf.
//
// Determinism:
//   - Sequential and Parallel runs produce identical Values.
func RunMeasure(m *matrix.Dense, ms measure.Measure, opts ...Option) (*Result, error) {
	if ms == nil {
		return nil, runErrorf(opRunMeasure, "<nil>", ErrNilMeasure)
	}
	name := ms.Name()
	o := gatherOptions(opts...)

	if err := validate(m); err != nil {
		return nil, runErrorf(opRunMeasure, name, err)
	}
	if o.mode == Device {
		return nil, runErrorf(opRunMeasure, name, fmt.Errorf("%v: %w", o.mode, ErrNotImplemented))
	}

	rows, cols := m.Shape()
	n := pairindex.MaxPairs(rows)
	values := make([]float64, n)
	runID := uuid.NewString()
	log := o.logger.With("run_id", runID, "measure", name, "mode", o.mode.String())
	log.Debug("correlation run started", "rows", rows, "cols", cols, "pairs", n, "workers", o.workers)

	start := time.Now()
	kern, err := prepare(m, ms)
	if err != nil {
		return nil, runErrorf(opRunMeasure, name, err)
	}
	switch o.mode {
	case Sequential:
		err = kern.run(values, 0, n)
	case Parallel:
		err = kern.runParallel(values, o.workers)
	default:
		err = fmt.Errorf("%v: %w", o.mode, ErrNotImplemented)
	}
	elapsed := time.Since(start)
	if err != nil {
		return nil, runErrorf(opRunMeasure, name, err)
	}

	index, err := pairindex.Build(rows)
	if err != nil {
		return nil, runErrorf(opRunMeasure, name, err)
	}

	res := &Result{
		RunID:  runID,
		Name:   name,
		Values: values,
		Index:  index,
		Mode:   o.mode,
	}
	if k, ok := ms.(measure.Kinded); ok {
		res.Kind = k.Kind()
	}
	if o.timing {
		res.SetExecutionTime(elapsed)
	}
	log.Debug("correlation run finished", "pairs", n, "elapsed", elapsed)

	return res, nil
}

// validate enforces the InvalidInput checks shared by every measure.
func validate(m *matrix.Dense) error {
	if err := matrix.ValidateMinRows(m, 2); err != nil {
		return err
	}

	return matrix.ValidateFinite(m)
}

// kernel is the per-pair computation of one run: compute applied to rows
// of src.
type kernel struct {
	src     *matrix.Dense
	compute func(x, y []float64) float64
}

// prepare picks the rows a measure reads. Centered measures get a copy of
// m with every row shifted by its mean (matrix.CenterRows), computed once
// for the whole run; all others read m directly.
func prepare(m *matrix.Dense, ms measure.Measure) (kernel, error) {
	c, ok := ms.(measure.Centered)
	if !ok {
		return kernel{src: m, compute: ms.Compute}, nil
	}
	xc, _, err := matrix.CenterRows(m)
	if err != nil {
		return kernel{}, err
	}
	d, ok := xc.(*matrix.Dense)
	if !ok {
		return kernel{}, fmt.Errorf("centered rows: unexpected %T", xc)
	}

	return kernel{src: d, compute: c.ComputeCentered}, nil
}

// run fills values[lo:hi]. The first pair is decoded from lo; the cursor
// then steps one pattern at a time.
func (k kernel) run(values []float64, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	cur, err := pairindex.NewCursor(k.src.Rows(), lo)
	if err != nil {
		return err
	}
	for p := lo; p < hi; p++ {
		pair := cur.Pair()
		values[p] = k.compute(k.src.RawRowView(pair.R1), k.src.RawRowView(pair.R2))
		cur.Next()
	}

	return nil
}

// runParallel splits [0, len(values)) into contiguous chunks and hands
// each one to a goroutine of a pool bounded by workers. Each chunk writes
// only values[lo:hi].
func (k kernel) runParallel(values []float64, workers int) error {
	n := len(values)
	chunks := workers * chunksPerWorker
	size := (n + chunks - 1) / chunks
	if size < 1 {
		size = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			return k.run(values, lo, hi)
		})
	}

	return g.Wait()
}
