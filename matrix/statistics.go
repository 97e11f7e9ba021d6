// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-row statistics used by the co-expression measures.
//   - Dense fast-paths operate on the flat buffer; other Matrix
//     implementations fall back to At/Set.
//
// Exposed API:
//   - RowMeans(X)  -> means               // arithmetic mean of every row
//   - CenterRows(X) -> (Xc, means)       // subtract per-row mean

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opRowMeans   = "RowMeans"
	opCenterRows = "CenterRows"
)

// matrixErrorf tags an error with the public operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// RowMeans returns the arithmetic mean of each row.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r) (+O(c) scratch on the fallback path).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r := X.Rows()
	means := make([]float64, r)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			means[i] = stat.Mean(d.RawRowView(i), nil)
		}

		return means, nil
	}

	row := make([]float64, X.Cols())
	var err error
	for i := 0; i < r; i++ {
		for j := range row {
			if row[j], err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
		}
		means[i] = stat.Mean(row, nil)
	}

	return means, nil
}

// CenterRows returns a copy of X with each row's mean subtracted, plus
// the means themselves.
//
// Implementation:
//   - Stage 1: RowMeans.
//   - Stage 2: clone and subtract in place (floats.AddConst on Dense).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterRows(X Matrix) (Matrix, []float64, error) {
	means, err := RowMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	Xc := X.Clone()

	if d, ok := Xc.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			floats.AddConst(-means[i], d.data[i*d.c:(i+1)*d.c])
		}

		return d, means, nil
	}

	var v float64
	for i := 0; i < Xc.Rows(); i++ {
		for j := 0; j < Xc.Cols(); j++ {
			if v, err = Xc.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterRows, err)
			}
			if err = Xc.Set(i, j, v-means[i]); err != nil {
				return nil, nil, matrixErrorf(opCenterRows, err)
			}
		}
	}

	return Xc, means, nil
}
