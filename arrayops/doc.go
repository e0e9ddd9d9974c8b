// SPDX-License-Identifier: MIT

// Package arrayops implements single-pass reductions over integer slices:
// maximum, plain and unrolled summation, and sum of squares.
//
// What is here?
//
//	Max          — linear scan with a running maximum (any cmp.Ordered type)
//	SumNaive     — one element per iteration, kept deliberately unoptimised
//	SumUnrolled  — two elements per iteration plus a tail for odd lengths
//	SumSquares   — Σ v² over the input
//
// SumNaive and SumUnrolled differ only in loop shape. They return the same
// value for every input, including overflow wrap-around, so they can be
// swapped freely and compared in benchmarks.
//
// Usage:
//
//	import "github.com/katalvlaran/kernels/arrayops"
//
//	m, err := arrayops.Max([]int{3, 5, 7, 2, 8, 6, 4, 10, 12, 1}) // 12
//	s := arrayops.SumUnrolled([]int{1, 2, 3, 4, 5})              // 15
//
// Complexity: every function is O(n) time and O(1) extra memory.
// Inputs are never mutated.
package arrayops
