// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coexpr/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.0, MustAt(t, m, 1, 2))

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestNewDenseFrom(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2, 3, 4}, {4, 3, 2, 1}, {1, 1, 2, 2}})
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 2.0, MustAt(t, m, 2, 3))
	assert.Equal(t, []float64{4, 3, 2, 1}, m.RawRowView(1))
}

func TestNewDenseFrom_Errors(t *testing.T) {
	_, err := matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrNonRectangular)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom([][]float64{{math.Inf(-1), 1}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom([][]float64{{math.NaN(), 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err, "relaxed policy accepts NaN")
	assert.True(t, math.IsNaN(MustAt(t, m, 0, 0)))
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustDenseFrom(t, src)
	src[0][0] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 7))
	assert.Equal(t, 7.0, MustAt(t, m, 1, 1))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_RowAndRawRowView(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = 100
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0), "Row returns a copy")

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	view := m.RawRowView(0)
	assert.Len(t, view, 2)
	assert.Equal(t, 2, cap(view), "view must not expose the next row")
	assert.Panics(t, func() { m.RawRowView(5) })
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestDense_String(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2.5}, {3, 4}})
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}
