// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures for Dense and the statistics helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coexpr/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the At/Set
// fallback paths instead of the *Dense fast paths.
type hide struct{ matrix.Matrix }

// Clone keeps the wrapper so fallback code stays on the slow path.
func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }

// MustDenseFrom builds a Dense from rows or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
