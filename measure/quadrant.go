// SPDX-License-Identifier: MIT

package measure

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// QuadrantMeasure is the quadrant-count (Q) measure.
//
// Each row is centered on its own mean. Every column then falls into one of
// four quadrants by the signs of the two centered values:
//
//	Q1 (+,+)   Q2 (−,+)   Q3 (−,−)   Q4 (+,−)
//
// Q = (Q1 + Q3 − Q2 − Q4) / cols, in [-1, 1].
//
// A centered value of exactly zero puts its column in no quadrant, so it
// counts towards none of Q1..Q4 but still towards cols. Constant rows
// therefore score 0.
type QuadrantMeasure struct{}

var _ Centered = QuadrantMeasure{}

// Name returns "Quadrant".
func (QuadrantMeasure) Name() string { return Quadrant.String() }

// Kind returns Quadrant.
func (QuadrantMeasure) Kind() Kind { return Quadrant }

// Compute returns the Q statistic of x and y.
// Complexity: O(n) time, O(1) space.
func (QuadrantMeasure) Compute(x, y []float64) float64 {
	if mismatched(x, y) {
		return math.NaN()
	}

	return quadrantCount(x, y, stat.Mean(x, nil), stat.Mean(y, nil))
}

// ComputeCentered returns the Q statistic of two rows already centered on
// their means, so only the signs are read.
func (QuadrantMeasure) ComputeCentered(cx, cy []float64) float64 {
	if mismatched(cx, cy) {
		return math.NaN()
	}

	return quadrantCount(cx, cy, 0, 0)
}

// quadrantCount classifies column k by the signs of x[k]-mx and y[k]-my.
func quadrantCount(x, y []float64, mx, my float64) float64 {
	var agree, disagree int
	for k := range x {
		dx, dy := x[k]-mx, y[k]-my
		switch {
		case dx > 0 && dy > 0, dx < 0 && dy < 0: // Q1, Q3
			agree++
		case dx < 0 && dy > 0, dx > 0 && dy < 0: // Q2, Q4
			disagree++
		}
	}

	return float64(agree-disagree) / float64(len(x))
}
