// SPDX-License-Identifier: MIT

package pairindex

const (
	opDecode = "Decode"
	opEncode = "Encode"
)

// MaxPairs returns the number of unordered pairs among rows entities,
// rows·(rows−1)/2. Fewer than two rows yield 0.
// Complexity: O(1).
func MaxPairs(rows int) int {
	if rows < 2 {
		return 0
	}

	return rows * (rows - 1) / 2
}

// Decode returns the row pair addressed by pattern.
//
// Implementation (triangular decrement):
//   - Stage 1: aux = pattern − rows + 1. A negative aux lands in row 0,
//     whose partner is aux + rows.
//   - Stage 2: otherwise subtract the shrinking row lengths rows−2,
//     rows−3, … from aux, moving r1 forward once per subtraction, until aux
//     turns negative; the partner is then j + aux + r1 + 1.
//
// Errors:
//   - ErrTooFewRows when rows < 2.
//   - ErrPatternOutOfRange when pattern ∉ [0, MaxPairs(rows)). The
//     pattern is never clamped.
//
// Complexity:
//   - Time O(r1), Space O(1).
func Decode(rows, pattern int) (Pair, error) {
	if rows < 2 {
		return Pair{}, codecErrorf(opDecode, rows, pattern, ErrTooFewRows)
	}
	if pattern < 0 || pattern >= MaxPairs(rows) {
		return Pair{}, codecErrorf(opDecode, rows, pattern, ErrPatternOutOfRange)
	}

	return decode(rows, pattern), nil
}

// decode assumes validated arguments.
func decode(rows, pattern int) Pair {
	r1, r2 := 0, -1
	aux := pattern - rows + 1
	if aux < 0 {
		r2 = aux + rows
	}

	for j := rows - 2; r2 == -1; j-- {
		aux -= j
		r1++
		if aux < 0 {
			r2 = j + aux + r1 + 1
		}
	}

	return Pair{R1: r1, R2: r2}
}

// Encode returns the pattern index of the unordered pair {r1, r2}.
// The arguments may be given in either order.
//
// The closed form counts the pairs of every earlier row,
// r1·(2·rows − r1 − 1)/2, then adds the offset of r2 inside row r1.
//
// Errors:
//   - ErrTooFewRows when rows < 2.
//   - ErrInvalidPair when r1 == r2 or either endpoint is outside [0, rows).
//
// Complexity: O(1).
func Encode(rows, r1, r2 int) (int, error) {
	if rows < 2 {
		return 0, codecErrorf(opEncode, rows, r1, ErrTooFewRows)
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if r1 < 0 || r2 >= rows || r1 == r2 {
		return 0, codecErrorf(opEncode, rows, r1, ErrInvalidPair)
	}

	return encode(rows, r1, r2), nil
}

// encode assumes 0 ≤ r1 < r2 < rows.
func encode(rows, r1, r2 int) int {
	return r1*(2*rows-r1-1)/2 + (r2 - r1 - 1)
}
