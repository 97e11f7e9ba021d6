// SPDX-License-Identifier: MIT

package measure

import "math"

// DegenerateARI is returned when the ARI denominator vanishes. It happens
// when both labelings are trivially identical (for example both rows
// constant, or every value distinct in both), which is perfect agreement.
const DegenerateARI = 1.0

// ariTol bounds |max_index − expected| treated as zero, relative to max_index.
const ariTol = 1e-12

// ARIMeasure is the Adjusted Rand Index of the two rows read as labelings.
//
//	comb_cells = Σ_ij C(n_ij, 2)
//	comb_rows  = Σ_i  C(a_i, 2)      comb_cols = Σ_j C(b_j, 2)
//	expected   = comb_rows·comb_cols / C(n, 2)
//	max_index  = (comb_rows + comb_cols) / 2
//	ARI        = (comb_cells − expected) / (max_index − expected)
//
// The measure is symmetric in x and y. Identical labelings score 1.
type ARIMeasure struct{}

var _ Measure = ARIMeasure{}

// Name returns "ARI".
func (ARIMeasure) Name() string { return ARI.String() }

// Kind returns ARI.
func (ARIMeasure) Kind() Kind { return ARI }

// Compute returns the ARI of x and y; see DegenerateARI for the boundary case.
// Complexity: O(n log n + U·V).
func (ARIMeasure) Compute(x, y []float64) float64 {
	if mismatched(x, y) {
		return math.NaN()
	}

	return ariFromTable(newContingency(x, y))
}

func ariFromTable(t *Contingency) float64 {
	combTotal := comb2(t.total)
	if combTotal == 0 {
		return DegenerateARI
	}

	var combCells, combRows, combCols float64
	for _, c := range t.counts {
		combCells += comb2(c)
	}
	for _, a := range t.rowTotals {
		combRows += comb2(a)
	}
	for _, b := range t.colTotals {
		combCols += comb2(b)
	}

	expected := combRows * combCols / combTotal
	maxIndex := (combRows + combCols) / 2
	den := maxIndex - expected
	if math.Abs(den) <= ariTol*math.Max(1, maxIndex) {
		return DegenerateARI
	}

	return (combCells - expected) / den
}
