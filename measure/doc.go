// SPDX-License-Identifier: MIT

// Package measure implements the pairwise association measures computed by
// the correlation engine.
//
// Every measure is a strategy behind the Measure interface: it receives two
// equally long rows (one gene each, one value per sample) and returns a
// single float64. The engine owns the pair loop, the index table and the
// result assembly, so adding a measure never touches that code.
//
// Built-in measures (Kind):
//
//	Quadrant  (Q)   - sign agreement of mean-centered rows, in [-1, 1].
//	ARI             - Adjusted Rand Index of the two rows read as labelings.
//	CC              - Pearson's contingency coefficient, sqrt(χ²/(χ²+n)).
//	MI              - mutual information in bits (log base 2), ≥ 0.
//
// Quadrant also implements Centered: the engine centers the matrix once
// per run and hands it rows whose mean is already zero.
//
// ARI, CC and MI treat values as categorical labels (exact float equality)
// and share one cross-tabulation, Contingency.
//
// Degenerate inputs never panic and never yield an error; they map to
// documented boundary values:
//
//	Quadrant: constant rows center to zeros, which fall in no quadrant → 0.
//	ARI:      max_index == expected (e.g. both rows constant) → 1.
//	          Fewer than two observations → 1.
//	CC:       cells with zero expected count are skipped; χ² = 0 → 0.
//	MI:       only observed joint labels are summed (0·log 0 := 0).
//
// Rows of different length violate the Measure contract; the built-ins
// return NaN instead of panicking.
package measure
