// SPDX-License-Identifier: MIT

package measure

import "math"

// CCMeasure is Pearson's contingency coefficient:
//
//	expected_ij = rowTotal_i · colTotal_j / n
//	χ²          = Σ (observed_ij − expected_ij)² / expected_ij
//	CC          = sqrt(χ² / (χ² + n))
//
// Cells whose expected count is zero contribute nothing to χ². An empty
// table, or χ² + n == 0, yields 0. The result lies in [0, 1).
type CCMeasure struct{}

var _ Measure = CCMeasure{}

// Name returns "CC".
func (CCMeasure) Name() string { return CC.String() }

// Kind returns CC.
func (CCMeasure) Kind() Kind { return CC }

// Compute returns the contingency coefficient of x and y.
// Complexity: O(n log n + U·V).
func (CCMeasure) Compute(x, y []float64) float64 {
	if mismatched(x, y) {
		return math.NaN()
	}

	return ccFromTable(newContingency(x, y))
}

func ccFromTable(t *Contingency) float64 {
	if t.total == 0 {
		return 0
	}
	n := float64(t.total)
	v := len(t.colTotals)

	var chi2 float64
	for i, a := range t.rowTotals {
		for j, b := range t.colTotals {
			expected := float64(a) * float64(b) / n
			if expected == 0 {
				continue
			}
			d := float64(t.counts[i*v+j]) - expected
			chi2 += d * d / expected
		}
	}

	if chi2+n == 0 {
		return 0
	}

	return math.Sqrt(chi2 / (chi2 + n))
}
