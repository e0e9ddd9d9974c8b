package arrayops_test

import (
	"fmt"

	"github.com/katalvlaran/kernels/arrayops"
)

// ExampleMax finds the largest element of the reference array.
func ExampleMax() {
	m, err := arrayops.Max([]int{3, 5, 7, 2, 8, 6, 4, 10, 12, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Maximum element: %d\n", m)
	// Output:
	// Maximum element: 12
}

// ExampleSumUnrolled shows that both summation shapes agree.
func ExampleSumUnrolled() {
	data := []int{1, 2, 3, 4, 5}
	fmt.Printf("Sum (Unoptimized): %d\n", arrayops.SumNaive(data))
	fmt.Printf("Sum (Optimized): %d\n", arrayops.SumUnrolled(data))
	// Output:
	// Sum (Unoptimized): 15
	// Sum (Optimized): 15
}
