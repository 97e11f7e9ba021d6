// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coexpr/matrix"
)

func TestValidateNotNil(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	assert.NoError(t, matrix.ValidateNotNil(MustDenseFrom(t, [][]float64{{1}})))
}

func TestValidateMinRows(t *testing.T) {
	one := MustDenseFrom(t, [][]float64{{1, 2}})
	assert.ErrorIs(t, matrix.ValidateMinRows(one, 2), matrix.ErrTooFewRows)
	assert.NoError(t, matrix.ValidateMinRows(one, 1))
	assert.ErrorIs(t, matrix.ValidateMinRows(nil, 1), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	ok := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	assert.NoError(t, matrix.ValidateFinite(ok))
	assert.NoError(t, matrix.ValidateFinite(hide{ok}))

	bad, err := matrix.NewDenseFrom([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf)
}
