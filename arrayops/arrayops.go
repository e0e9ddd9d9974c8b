// SPDX-License-Identifier: MIT

package arrayops

import (
	"cmp"
	"errors"
)

// ErrEmptyInput indicates that a reduction without an identity element
// (Max) was asked to reduce an empty slice.
var ErrEmptyInput = errors.New("arrayops: empty input")

// Max returns the greatest element of values.
//
// Algorithm:
//  1. Seed the running maximum with values[0].
//  2. Scan values[1:], replacing the maximum on a strictly greater element.
//
// Errors:
//   - ErrEmptyInput if len(values) == 0.
//
// Complexity: O(n) time, O(1) memory.
func Max[T cmp.Ordered](values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, ErrEmptyInput
	}

	best := values[0]
	for i := 1; i < len(values); i++ {
		if values[i] > best {
			best = values[i]
		}
	}

	return best, nil
}

// SumNaive returns the arithmetic sum of values, one element per iteration.
// The multiply by one is redundant and stays: this is the baseline the
// unrolled variant is measured against.
func SumNaive(values []int) int {
	sum := 0
	for i := 0; i < len(values); i++ {
		sum += values[i] * 1
	}

	return sum
}

// SumUnrolled returns the arithmetic sum of values, processing two elements
// per iteration. A tail loop picks up the last element when len is odd.
//
// Invariant: SumUnrolled(v) == SumNaive(v) for every v.
func SumUnrolled(values []int) int {
	n := len(values)
	sum := 0
	i := 0

	// pairs
	for ; i < n-1; i += 2 {
		sum += values[i] + values[i+1]
	}
	// leftover element for odd n
	for ; i < n; i++ {
		sum += values[i]
	}

	return sum
}

// SumSquares returns Σ v² over values. Empty input yields 0.
func SumSquares(values []int) int {
	result := 0
	for _, v := range values {
		result += v * v
	}

	return result
}
