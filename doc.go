// Package kernels is a small collection of reference kernels: the kind of
// tiny, self-contained routines used as fixtures when comparing compiler
// optimisation levels or loop shapes.
//
// What is in the box?
//
//	arrayops/   — maximum, plain and 2-wide unrolled sums, sum of squares
//	fibonacci/  — recursive, iterative and memoised F(n), range sums
//	gcd/        — Euclid's remainder loop, LCM
//	polynomial/ — running-power evaluation and Horner's nested form
//	search/     — brute-force substring search (first, all, count)
//	matrix/     — row-major int matrix and the naive i-j-k product
//	sequence/   — deterministic ramps and seeded random inputs
//	programs/   — the original one-line programs, a registry and a runner
//	cmd/kernels — CLI over programs/
//
// Every kernel is a pure function over caller-owned input. Nothing here
// keeps global state, and only programs.Runner.RunAll starts goroutines.
//
// Quick example:
//
//	m, _ := arrayops.Max([]int{3, 5, 7, 2, 8, 6, 4, 10, 12, 1}) // 12
//	i := search.IndexString("ABABDABACDABABCABCABCABCABC", "ABABCAB") // 10
//
//	go install github.com/katalvlaran/kernels/cmd/kernels@latest
package kernels
