// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/coexpr/matrix"
)

func ExampleCenterRows() {
	X, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
	})
	Xc, means, _ := matrix.CenterRows(X)
	fmt.Println(means)
	fmt.Print(Xc)
	// Output:
	// [2.5 2.5]
	// [-1.5, -0.5, 0.5, 1.5]
	// [1.5, 0.5, -0.5, -1.5]
}
