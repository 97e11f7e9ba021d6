// SPDX-License-Identifier: MIT

package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coexpr/measure"
)

func TestContingency_Counts(t *testing.T) {
	x := []float64{2, 1, 1, 2, 2, 3}
	y := []float64{0, 0, 1, 1, 1, 0}

	tbl, err := measure.NewContingency(x, y)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, tbl.RowLabels)
	assert.Equal(t, []float64{0, 1}, tbl.ColLabels)
	r, c := tbl.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	// label 1 → (0,1); label 2 → (0,1,1); label 3 → (0)
	assert.Equal(t, 1, tbl.At(0, 0))
	assert.Equal(t, 1, tbl.At(0, 1))
	assert.Equal(t, 1, tbl.At(1, 0))
	assert.Equal(t, 2, tbl.At(1, 1))
	assert.Equal(t, 1, tbl.At(2, 0))
	assert.Equal(t, 0, tbl.At(2, 1))

	assert.Equal(t, []int{2, 3, 1}, tbl.RowTotals())
	assert.Equal(t, []int{3, 3}, tbl.ColTotals())
	assert.Equal(t, 6, tbl.Total())
}

func TestContingency_NegativeZeroIsZero(t *testing.T) {
	tbl, err := measure.NewContingency([]float64{0, math.Copysign(0, -1)}, []float64{1, 1})
	require.NoError(t, err)
	r, _ := tbl.Dims()
	assert.Equal(t, 1, r)
}

func TestContingency_LengthMismatch(t *testing.T) {
	_, err := measure.NewContingency([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, measure.ErrLengthMismatch)
}
