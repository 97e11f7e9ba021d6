// SPDX-License-Identifier: MIT

// Package pairindex translates between a linear "pattern" index and the
// unordered row pair it names.
//
// For N rows there are N·(N−1)/2 unordered pairs {(i,j) : 0 ≤ i < j < N}.
// Every pairwise measure in coexpr stores one value per pair in a flat
// vector; pairindex is the arithmetic that keeps that vector addressable:
//
//	pattern:  0      1      2      3      4      5
//	pair:   (0,1)  (0,2)  (0,3)  (1,2)  (1,3)  (2,3)     // N = 4
//
// The order is the one produced by the nested loops
//
//	for i := 0; i < N; i++ {
//		for j := i + 1; j < N; j++ { ... }
//	}
//
// but Decode reaches any pattern directly, so a caller can start work in
// the middle of the sequence (chunked or parallel execution) without
// walking all the earlier pairs.
//
// API:
//   - MaxPairs(n)         : number of unordered pairs.
//   - Decode(n, p)        : pattern → Pair (triangular decrement, O(i)).
//   - Encode(n, i, j)     : Pair → pattern (closed form, O(1)).
//   - Build(n)            : eager pattern → pair lookup Table.
//   - NewCursor(n, p)     : O(1) stepping from an arbitrary start.
//
// Errors:
//
//	ErrTooFewRows         - fewer than two rows, no pattern exists.
//	ErrPatternOutOfRange  - pattern outside [0, MaxPairs(n)).
//	ErrInvalidPair        - i == j or an endpoint outside [0, n).
//	ErrNegativeRows       - n < 0.
//
// Everything here is pure arithmetic: no globals, no hidden state.
package pairindex
