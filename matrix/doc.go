// SPDX-License-Identifier: MIT

// Package matrix holds the numeric input of every coexpr measure: a dense,
// row-major expression matrix with rows = entities (genes) and
// cols = observations (samples).
//
// The package provides:
//
//   - Dense, a flat row-major buffer with bounds-checked At/Set and an
//     aliasing RawRowView for hot loops.
//   - NewDenseFrom and FromMat constructors for [][]float64 and gonum
//     matrices.
//   - A numeric policy rejecting NaN and ±Inf on ingestion and Set
//     (relax with WithNoValidateNaNInf).
//   - Row statistics (RowMeans, CenterRows) built on gonum/stat.
//   - Validators shared with the correlation engine.
//
// A Dense is never mutated by the measures; it can be shared read-only
// between goroutines while a correlation run is in progress.
package matrix
