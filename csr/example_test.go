package csr_test

import (
	"fmt"

	"github.com/katalvlaran/spmmbench/csr"
	"github.com/katalvlaran/spmmbench/matrix"
)

// ExampleFromDense shows the sentinel pair stored for an all-zero row.
func ExampleFromDense() {
	d, _ := matrix.FromRows([][]int64{
		{0, 2, 0},
		{0, 0, 0},
		{1, 0, 3},
	})
	m, _ := csr.FromDense(d)
	for i := 0; i < m.Size(); i++ {
		vals, cols, _ := m.Row(i)
		fmt.Println(i, vals, cols)
	}
	// Output:
	// 0 [2] [1]
	// 1 [0 0] [0 0]
	// 2 [1 3] [0 2]
}
