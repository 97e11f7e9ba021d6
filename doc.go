// Package coexpr computes pairwise co-expression measures between the rows
// of a numeric expression matrix.
//
// 🚀 What is coexpr?
//
//	A small, dependency-light library that brings together:
//		• Dense expression matrices with a strict numeric policy (matrix)
//		• A bijective pattern ↔ (row, row) codec (pairindex)
//		• Four association measures: Quadrant, ARI, CC and MI (measure)
//		• A sequential or parallel engine producing one value per pair (correlation)
//
// Under the hood the work is split into four subpackages:
//
//	matrix/      — row-major Dense matrix, validators, row statistics, gonum adapter
//	pairindex/   — MaxPairs, Decode, Encode, Table and Cursor over unordered row pairs
//	measure/     — Measure interface, Kind enumeration, contingency table, built-in measures
//	correlation/ — Run / RunMeasure, execution modes, options and Result
//
// Quick example (3 genes × 4 samples):
//
//	g0: 1 2 3 4
//	g1: 4 3 2 1
//	g2: 1 1 2 2
//
// Quadrant yields one value per pattern, in pattern order:
//
//	p=0 (g0,g1) -1
//	p=1 (g0,g2) +1
//	p=2 (g1,g2) -1
//
// Downstream network builders read Result.Above, Result.Value or
// Result.Square; building the network itself is left to them.
//
//	go get github.com/katalvlaran/coexpr
package coexpr
