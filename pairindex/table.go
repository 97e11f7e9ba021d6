// SPDX-License-Identifier: MIT

package pairindex

import "fmt"

// Table is the materialised pattern → pair lookup, a MaxPairs(rows) × 2
// grid of row coordinates stored flat as [r1₀, r2₀, r1₁, r2₁, …].
// A Table is immutable after Build and safe for concurrent readers.
type Table struct {
	rows  int
	pairs []int
}

// Build materialises the lookup table for rows entities.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0; rows < 2 yields an empty table.
//   - Stage 2: decode pattern 0 and step a Cursor through the rest.
//
// Errors:
//   - ErrNegativeRows when rows < 0.
//
// Complexity:
//   - Time O(P), Space O(P) with P = MaxPairs(rows).
func Build(rows int) (*Table, error) {
	if rows < 0 {
		return nil, fmt.Errorf("Build(rows=%d): %w", rows, ErrNegativeRows)
	}
	n := MaxPairs(rows)
	t := &Table{rows: rows, pairs: make([]int, 2*n)}
	if n == 0 {
		return t, nil
	}

	cur, err := NewCursor(rows, 0)
	if err != nil {
		return nil, err
	}
	for {
		p := cur.Pattern()
		t.pairs[2*p] = cur.Pair().R1
		t.pairs[2*p+1] = cur.Pair().R2
		if !cur.Next() {
			break
		}
	}

	return t, nil
}

// Rows returns the entity count the table was built for.
func (t *Table) Rows() int { return t.rows }

// Len returns the number of patterns in the table.
func (t *Table) Len() int { return len(t.pairs) / 2 }

// Pair returns the pair stored for pattern p.
// Errors: ErrPatternOutOfRange when p ∉ [0, Len()).
func (t *Table) Pair(p int) (Pair, error) {
	if p < 0 || p >= t.Len() {
		return Pair{}, codecErrorf("Table.Pair", t.rows, p, ErrPatternOutOfRange)
	}

	return Pair{R1: t.pairs[2*p], R2: t.pairs[2*p+1]}, nil
}

// Pattern returns the pattern index of {r1, r2}; see Encode.
func (t *Table) Pattern(r1, r2 int) (int, error) {
	return Encode(t.rows, r1, r2)
}

// Pairs returns a copy of every pair in pattern order.
// Complexity: O(P).
func (t *Table) Pairs() [][2]int {
	out := make([][2]int, t.Len())
	for p := range out {
		out[p] = [2]int{t.pairs[2*p], t.pairs[2*p+1]}
	}

	return out
}
