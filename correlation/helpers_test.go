// SPDX-License-Identifier: MIT

package correlation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coexpr/matrix"
)

// scenario is the 3×4 matrix used throughout the package docs.
func scenario(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom([][]float64{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{1, 1, 2, 2},
	})
	require.NoError(t, err)

	return m
}

// randomLabels builds a rows×cols matrix of small integer labels, suitable
// for both continuous and categorical measures.
func randomLabels(tb testing.TB, seed int64, rows, cols, k int) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			data[i][j] = float64(rng.Intn(k))
		}
	}
	m, err := matrix.NewDenseFrom(data)
	require.NoError(tb, err)

	return m
}
