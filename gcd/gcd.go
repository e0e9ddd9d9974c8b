// SPDX-License-Identifier: MIT

// Package gcd provides the iterative Euclidean greatest common divisor and
// the least common multiple built on it.
//
// Conventions:
//   - Results are never negative; negative operands are accepted.
//   - GCD(a, 0) = |a| and GCD(0, 0) = 0.
//   - LCM(a, 0) = 0.
//   - LCM wraps when the multiple exceeds math.MaxInt; CheckedLCM reports
//     ErrOverflow instead.
//
// Complexity: O(log min(|a|, |b|)) remainder steps.
package gcd

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow indicates a least common multiple larger than math.MaxInt.
var ErrOverflow = errors.New("gcd: result overflows int")

// GCD returns the greatest common divisor of a and b by repeated remainder:
// (a, b) ← (b, a mod b) until b == 0.
//
// Go's % truncates toward zero, so intermediate values may be negative for
// negative operands; only the sign of the final value is normalised.
// GCD(math.MinInt, 0) and GCD(math.MinInt, math.MinInt) overflow and return
// math.MinInt.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// Dividing before multiplying keeps intermediates no larger than the result.
// If the result does not fit in an int it wraps and the returned value is
// meaningless, e.g. LCM(math.MaxInt, math.MaxInt-1); use CheckedLCM when
// operands are untrusted.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// CheckedLCM is LCM with overflow detection.
//
// Errors:
//   - ErrOverflow if |a / GCD(a, b) * b| > math.MaxInt.
func CheckedLCM(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := absUint(GCD(a, b))
	hi, lo := bits.Mul(absUint(a)/g, absUint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("LCM(%d,%d): %w", a, b, ErrOverflow)
	}

	return int(lo), nil
}

// absUint returns |x| without overflowing on math.MinInt.
func absUint(x int) uint {
	if x < 0 {
		return uint(-x)
	}

	return uint(x)
}
