// SPDX-License-Identifier: MIT

package programs

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/kernels/arrayops"
	"github.com/katalvlaran/kernels/fibonacci"
	"github.com/katalvlaran/kernels/gcd"
	"github.com/katalvlaran/kernels/matrix"
	"github.com/katalvlaran/kernels/polynomial"
	"github.com/katalvlaran/kernels/search"
	"github.com/katalvlaran/kernels/sequence"
)

// Builtin returns the reference programs in their canonical order.
func Builtin() []Program {
	return []Program{
		{
			Name:        "array_operations",
			Description: "maximum element by linear scan",
			Check:       Inputs.checkMax,
			Run:         runMax,
		},
		{
			Name:        "fibonacci_recursive",
			Description: "sum of F(i) for i < count",
			Check:       Inputs.checkFibonacci,
			Run:         runFibonacci,
		},
		{
			Name:        "gcd_algorithm",
			Description: "greatest common divisor by Euclid's remainder loop",
			Run:         runGCD,
		},
		{
			Name:        "polynomial_eval",
			Description: "polynomial value by running-power accumulation",
			Run:         runPolynomial,
		},
		{
			Name:        "string_search",
			Description: "first offset of pattern in text, brute force",
			Run:         runSearch,
		},
		{
			Name:        "sum_unoptimized",
			Aliases:     []string{"new1"},
			Description: "array sum, one element per iteration",
			Run:         runSumNaive,
		},
		{
			Name:        "sum_optimized",
			Aliases:     []string{"new2"},
			Description: "array sum, unrolled two elements per iteration",
			Run:         runSumUnrolled,
		},
		{
			Name:        "sum_of_squares",
			Aliases:     []string{"embedded_systems", "optimization_examples", "tree_traversal"},
			Description: "sum of squares over the ramp i*step",
			Check:       Inputs.checkSquares,
			Run:         runSquares,
		},
		{
			Name:        "matrix_multiplication",
			Description: "naive square matrix product, prints C[0][0]",
			Check:       Inputs.checkMatrix,
			Run:         runMatrix,
		},
	}
}

// Default returns a registry of the builtin programs.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		// Builtin names are fixed; a collision is a programming error.
		panic(err)
	}

	return r
}

func runMax(_ context.Context, in Inputs, w io.Writer) error {
	m, err := arrayops.Max(in.Max.Values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Maximum element: %d\n", m)

	return err
}

func runFibonacci(_ context.Context, in Inputs, w io.Writer) error {
	var fn fibonacci.Func
	switch in.Fibonacci.Method {
	case MethodIterative:
		fn = fibonacci.Iterative
	case MethodMemo:
		fn = fibonacci.NewMemo().At
	default:
		fn = fibonacci.Recursive
	}
	total, err := fibonacci.SumRange(in.Fibonacci.Count, fn)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Result: %d\n", total)

	return err
}

func runGCD(_ context.Context, in Inputs, w io.Writer) error {
	a, b := in.GCD.A, in.GCD.B
	_, err := fmt.Fprintf(w, "GCD of %d and %d is %d\n", a, b, gcd.GCD(a, b))

	return err
}

func runPolynomial(_ context.Context, in Inputs, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Result: %.2f\n", polynomial.Eval(in.Polynomial.X, in.Polynomial.Coefficients))

	return err
}

func runSearch(_ context.Context, in Inputs, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Pattern found at index: %d\n", search.IndexString(in.Search.Text, in.Search.Pattern))

	return err
}

func runSumNaive(_ context.Context, in Inputs, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Sum (Unoptimized): %d\n", arrayops.SumNaive(in.Sum.Values))

	return err
}

func runSumUnrolled(_ context.Context, in Inputs, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Sum (Optimized): %d\n", arrayops.SumUnrolled(in.Sum.Values))

	return err
}

func runSquares(_ context.Context, in Inputs, w io.Writer) error {
	data, err := sequence.Ramp(in.Squares.Count, sequence.WithStep(in.Squares.Step))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Result: %d\n", arrayops.SumSquares(data))

	return err
}

func runMatrix(ctx context.Context, in Inputs, w io.Writer) error {
	n := in.Matrix.Size
	a, err := matrix.NewSquare(n)
	if err != nil {
		return err
	}
	b, err := matrix.NewSquare(n)
	if err != nil {
		return err
	}
	a.Fill(func(i, j int) int { return i + j })
	b.Fill(func(i, j int) int { return i - j })

	// Mul is not interruptible; honour cancellation before the O(n³) part.
	if err := ctx.Err(); err != nil {
		return err
	}
	c, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	v, err := c.At(0, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Result C[0][0]: %d\n", v)

	return err
}
