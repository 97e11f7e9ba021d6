// SPDX-License-Identifier: MIT

package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coexpr/measure"
)

func TestKind_StringAndValid(t *testing.T) {
	assert.Equal(t, "Quadrant", measure.Quadrant.String())
	assert.Equal(t, "ARI", measure.ARI.String())
	assert.Equal(t, "CC", measure.CC.String())
	assert.Equal(t, "MI", measure.MI.String())
	assert.Equal(t, "Kind(0)", measure.Kind(0).String())

	for _, k := range measure.Kinds() {
		assert.True(t, k.Valid(), k.String())
	}
	assert.False(t, measure.Kind(0).Valid())
	assert.False(t, measure.Kind(99).Valid())
}

func TestParseKind(t *testing.T) {
	cases := map[string]measure.Kind{
		"Quadrant":            measure.Quadrant,
		"q":                   measure.Quadrant,
		" ARI ":               measure.ARI,
		"adjusted-rand-index": measure.ARI,
		"cc":                  measure.CC,
		"Mutual-Information":  measure.MI,
	}
	for in, want := range cases {
		got, err := measure.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := measure.ParseKind("pearson")
	assert.ErrorIs(t, err, measure.ErrUnknownKind)
}

func TestNew(t *testing.T) {
	for _, k := range measure.Kinds() {
		m, err := measure.New(k)
		require.NoError(t, err)
		assert.Equal(t, k.String(), m.Name())

		kinded, ok := m.(measure.Kinded)
		require.True(t, ok, "built-in %v must report its kind", k)
		assert.Equal(t, k, kinded.Kind())
	}

	_, err := measure.New(measure.Kind(0))
	assert.ErrorIs(t, err, measure.ErrUnknownKind)
}

func TestFunc(t *testing.T) {
	dot := measure.NewFunc("dot", func(x, y []float64) float64 {
		var s float64
		for i := range x {
			s += x[i] * y[i]
		}
		return s
	})
	assert.Equal(t, "dot", dot.Name())
	assert.Equal(t, 11.0, dot.Compute([]float64{1, 2}, []float64{3, 4}))

	assert.Panics(t, func() { measure.NewFunc("nil", nil) })
}
