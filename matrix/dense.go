// SPDX-License-Identifier: MIT

// Package matrix - the expression matrix: one gene per row, one sample per column.
//
// Purpose:
//   - Keep samples of a gene contiguous (offset i*cols + j) so measures read rows as slices.
//   - At/Set report bad coordinates as errors; RawRowView panics like gonum.
//   - Apply the NaN/Inf policy chosen at construction to every write.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RawRowView: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// method tags for error context

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxNewFrom  = "NewDenseFrom"
	ctxFromMat  = "FromMat"
	ctxRawRow   = "RawRowView"
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a genes×samples matrix stored row-major.
//   - r is the gene count, c the sample count.
//   - data holds r*c values; gene i occupies data[i*c : (i+1)*c].
//   - validateNaNInf rejects non-finite values on ingestion and Set.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: reject rows<=0 or cols<=0 with ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and apply the numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom copies a row-major [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: reject empty input and rows of length 0 (ErrInvalidDimensions).
//   - Stage 2: every row must match the first row's length (ErrNonRectangular).
//   - Stage 3: copy values, rejecting NaN/±Inf under the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions, ErrNonRectangular, ErrNaNInf (wrapped with the
//     offending coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxNewFrom, i, len(rows[i]), c, ErrNonRectangular)
		}
	}

	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}
	for i := 0; i < r; i++ {
		for j, v := range rows[i] {
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxNewFrom, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or a wrapped ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf when the policy rejects v.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i ∉ [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRowView returns row i as a slice aliasing the backing buffer.
// Callers must treat the slice as read-only. Like gonum's RawRowView it
// panics on an out-of-range row, since it exists for validated hot loops.
func (m *Dense) RawRowView(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRawRow, i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns a deep copy carrying the same numeric policy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String renders one bracketed line per row; intended for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
