// SPDX-License-Identifier: MIT

// Package correlation is the measure engine: it runs one association
// measure over every unordered pair of rows of an expression matrix and
// assembles a Result.
//
// 🚀 Quick start:
//
//	X, _ := matrix.NewDenseFrom([][]float64{
//		{1, 2, 3, 4},
//		{4, 3, 2, 1},
//		{1, 1, 2, 2},
//	})
//	res, err := correlation.Run(X, measure.Quadrant, correlation.WithTiming())
//	// res.Values  = [-1 1 -1]          one value per pattern
//	// res.Index   = (0,1) (0,2) (1,2)  pattern → row pair
//
// The engine enumerates pattern indices 0..P−1 (P = rows·(rows−1)/2),
// decodes each into its row pair through pairindex, hands the two rows to
// the measure and stores the value at the pattern's slot. The measure is a
// strategy (measure.Measure): the loop, the index table and the result
// assembly are shared by all of them.
//
// ⚙️ Execution modes (Mode):
//
//	Sequential - one goroutine, ascending pattern order (default).
//	Parallel   - contiguous pattern chunks on an errgroup of WithWorkers
//	             goroutines. Every slot receives exactly the value the
//	             sequential run computes.
//	Device     - accelerator execution; not implemented, Run returns
//	             ErrNotImplemented rather than falling back.
//
// Timing (WithTiming) measures the pair loop only. Building the index table
// is never included, whatever the measure.
//
// Errors:
//
//	ErrNilMatrix      - nil input matrix.
//	ErrTooFewRows     - fewer than two rows; nothing is computed.
//	ErrNilMeasure     - RunMeasure called with a nil measure.
//	ErrNotImplemented - Device mode.
//	measure.ErrUnknownKind, matrix.ErrNaNInf - wrapped input errors.
//
// Numeric degeneracies inside a pair (constant rows, empty marginals) are
// absorbed by the measure into that pair's value and never abort a run.
package correlation
