// SPDX-License-Identifier: MIT

package measure

import "math"

// MIMeasure is the mutual information, in bits, between the empirical
// label distributions of x and y:
//
//	MI = Σ_{(a,b) observed} p(a,b) · log2( p(a,b) / (p(a)·p(b)) )
//
// Only label pairs that actually occur are summed, the usual 0·log 0 := 0
// convention. MI is symmetric and non-negative; rounding noise below zero
// is clamped to 0.
type MIMeasure struct{}

var _ Measure = MIMeasure{}

// Name returns "MI".
func (MIMeasure) Name() string { return MI.String() }

// Kind returns MI.
func (MIMeasure) Kind() Kind { return MI }

// Compute returns the mutual information of x and y.
// Complexity: O(n log n + U·V).
func (MIMeasure) Compute(x, y []float64) float64 {
	if mismatched(x, y) {
		return math.NaN()
	}

	return miFromTable(newContingency(x, y))
}

// miFromTable sums c/n · log2(c·n / (a·b)) over non-empty cells, which is
// the joint/marginal form above with the 1/n factors cancelled.
func miFromTable(t *Contingency) float64 {
	if t.total == 0 {
		return 0
	}
	n := float64(t.total)
	v := len(t.colTotals)

	var mi float64
	for i, a := range t.rowTotals {
		for j, b := range t.colTotals {
			c := t.counts[i*v+j]
			if c == 0 {
				continue
			}
			fc := float64(c)
			mi += fc / n * math.Log2(fc*n/(float64(a)*float64(b)))
		}
	}

	return math.Max(mi, 0)
}
