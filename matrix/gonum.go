// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMat copies any gonum matrix into a Dense, applying the numeric policy.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrInvalidDimensions for an empty source.
//   - ErrNaNInf (wrapped with coordinates) under the default policy.
//
// Complexity: O(r*c).
func FromMat(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMat, ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMat, err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromMat, i, j, ErrNaNInf)
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// ToMat returns a gonum copy of m, handy for handing results to gonum
// routines (eigen decomposition, plotting, …).
func (m *Dense) ToMat() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
