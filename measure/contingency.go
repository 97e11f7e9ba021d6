// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLengthMismatch indicates rows of different length.
var ErrLengthMismatch = errors.New("measure: rows differ in length")

// Contingency is the cross-tabulation of two rows read as categorical
// labels: cell (i,j) counts the columns k with x[k] == RowLabels[i] and
// y[k] == ColLabels[j]. Labels are the sorted distinct values of each row,
// so the layout is deterministic.
type Contingency struct {
	RowLabels []float64 // sorted distinct values of x
	ColLabels []float64 // sorted distinct values of y

	counts    []int // row-major len(RowLabels)×len(ColLabels)
	rowTotals []int
	colTotals []int
	total     int
}

// NewContingency builds the table for x and y.
//
// Implementation:
//   - Stage 1: sorted distinct labels per row and a label → index map.
//   - Stage 2: a single pass over the columns fills counts and marginals.
//
// Errors:
//   - ErrLengthMismatch when len(x) != len(y).
//
// Complexity:
//   - Time O(n log n + U·V), Space O(U·V) for U, V distinct labels.
func NewContingency(x, y []float64) (*Contingency, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("NewContingency(%d, %d): %w", len(x), len(y), ErrLengthMismatch)
	}

	return newContingency(x, y), nil
}

// newContingency assumes len(x) == len(y).
func newContingency(x, y []float64) *Contingency {
	rowLabels, rowIdx := labels(x)
	colLabels, colIdx := labels(y)
	u, v := len(rowLabels), len(colLabels)

	t := &Contingency{
		RowLabels: rowLabels,
		ColLabels: colLabels,
		counts:    make([]int, u*v),
		rowTotals: make([]int, u),
		colTotals: make([]int, v),
		total:     len(x),
	}
	for k := range x {
		i, j := rowIdx[x[k]], colIdx[y[k]]
		t.counts[i*v+j]++
		t.rowTotals[i]++
		t.colTotals[j]++
	}

	return t
}

// labels returns the sorted distinct values of row and their positions.
func labels(row []float64) ([]float64, map[float64]int) {
	sorted := slices.Clone(row)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	idx := make(map[float64]int, len(sorted))
	for i, v := range sorted {
		idx[v] = i
	}

	return sorted, idx
}

// Dims returns the number of distinct labels in x and y.
func (t *Contingency) Dims() (rows, cols int) {
	return len(t.RowLabels), len(t.ColLabels)
}

// At returns the count of cell (i, j). Indices must be in range.
func (t *Contingency) At(i, j int) int {
	return t.counts[i*len(t.ColLabels)+j]
}

// RowTotals returns a copy of the per-label totals of x.
func (t *Contingency) RowTotals() []int { return slices.Clone(t.rowTotals) }

// ColTotals returns a copy of the per-label totals of y.
func (t *Contingency) ColTotals() []int { return slices.Clone(t.colTotals) }

// Total returns the number of observations.
func (t *Contingency) Total() int { return t.total }
