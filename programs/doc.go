// SPDX-License-Identifier: MIT

// Package programs reproduces the standalone reference programs on top of
// the kernel packages. Each program takes its fixed literal inputs and
// writes exactly one formatted line, for example:
//
//	array_operations       Maximum element: 12
//	gcd_algorithm          GCD of 48 and 18 is 6
//	string_search          Pattern found at index: 10
//
// The three placeholder programs that shared one copy-pasted body
// (embedded_systems, optimization_examples, tree_traversal) are a single
// program, sum_of_squares, reachable under each old name as an alias.
//
// Inputs default to the literals of the original programs (DefaultInputs)
// and may be overridden from YAML (LoadInputs); keys that are absent keep
// their defaults:
//
//	gcd:
//	  a: 1071
//	  b: 462
//	fibonacci:
//	  count: 30
//	  method: memo
//
// A Runner executes programs by name. RunAll fans out one goroutine per
// program and writes their lines in request order, so output is identical
// to running them one by one.
package programs
