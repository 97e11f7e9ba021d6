// SPDX-License-Identifier: MIT

package pairindex

// Cursor walks patterns in ascending order starting from any position.
// The starting pair is decoded once; every following step is O(1).
//
// A Cursor is a small value type owned by one goroutine. Use one cursor
// per chunk when splitting the pattern range across workers.
type Cursor struct {
	rows    int
	pattern int
	end     int
	pair    Pair
}

// NewCursor positions a cursor on pattern start.
// Errors are those of Decode.
func NewCursor(rows, start int) (*Cursor, error) {
	p, err := Decode(rows, start)
	if err != nil {
		return nil, err
	}

	return &Cursor{rows: rows, pattern: start, end: MaxPairs(rows), pair: p}, nil
}

// Pattern returns the current pattern index.
func (c *Cursor) Pattern() int { return c.pattern }

// Pair returns the current row pair.
func (c *Cursor) Pair() Pair { return c.pair }

// Next advances to the following pattern. It reports false, leaving the
// cursor unchanged, once the last pair has been reached.
func (c *Cursor) Next() bool {
	if c.pattern+1 >= c.end {
		return false
	}
	c.pattern++
	c.pair.R2++
	if c.pair.R2 == c.rows {
		c.pair.R1++
		c.pair.R2 = c.pair.R1 + 1
	}

	return true
}
