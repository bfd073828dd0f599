package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spmmbench/matrix"
)

// ExampleDense_AddToRow merges a scratch row into a zero matrix, the way the
// multiplier publishes one finished output row.
func ExampleDense_AddToRow() {
	d, _ := matrix.NewSquare(3)
	_ = d.AddToRow(2, []int64{1, 12, 0})
	_ = d.AddToRow(2, []int64{0, 1, 0})
	fmt.Print(d)
	fmt.Println(d.NonZeros())
	// Output:
	// [0, 0, 0]
	// [0, 0, 0]
	// [1, 13, 0]
	// 2
}
