// SPDX-License-Identifier: MIT

package correlation_test

import (
	"fmt"

	"github.com/katalvlaran/coexpr/correlation"
	"github.com/katalvlaran/coexpr/matrix"
	"github.com/katalvlaran/coexpr/measure"
)

func ExampleRun() {
	X, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{1, 1, 2, 2},
	})

	res, err := correlation.Run(X, measure.Quadrant)
	if err != nil {
		fmt.Println(err)
		return
	}
	for p, v := range res.Values {
		pair, _ := res.Pair(p)
		fmt.Printf("%d %v %+.1f\n", p, pair, v)
	}
	// Output:
	// 0 (0,1) -1.0
	// 1 (0,2) +1.0
	// 2 (1,2) -1.0
}

func ExampleResult_Above() {
	X, _ := matrix.NewDenseFrom([][]float64{
		{0, 0, 1, 1, 2, 2},
		{1, 1, 0, 0, 2, 2},
		{0, 1, 0, 1, 0, 1},
	})

	res, _ := correlation.Run(X, measure.MI,
		correlation.WithMode(correlation.Parallel), correlation.WithWorkers(2))
	for _, pv := range res.Above(0.5, false) {
		fmt.Printf("%v %.4f bits\n", pv.Pair, pv.Value)
	}
	// Output:
	// (0,1) 1.5850 bits
}
