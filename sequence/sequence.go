// SPDX-License-Identifier: MIT
// Package: kernels/sequence
//
// sequence.go — Ramp and Random generators.

package sequence

import "fmt"

// Ramp returns the arithmetic progression start, start+step, ..., of length n.
// Defaults: start = 0, step = 1.
//
// Errors:
//   - ErrBadSize if n < 0 or n > MaxLen.
//
// Complexity: O(n) time and memory.
func Ramp(n int, opts ...Option) ([]int, error) {
	if n < 0 || n > MaxLen {
		return nil, fmt.Errorf("Ramp(%d): %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = cfg.start + i*cfg.step
	}

	return out, nil
}

// Random returns n pseudo-random ints drawn uniformly from [lo, hi).
// The same (n, options) always produce the same slice.
//
// Errors:
//   - ErrBadSize if n < 0 or n > MaxLen.
//
// Complexity: O(n) time and memory.
func Random(n int, opts ...Option) ([]int, error) {
	if n < 0 || n > MaxLen {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)

	span := int64(cfg.hi) - int64(cfg.lo)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = cfg.lo + int(cfg.rng.Int63n(span))
	}

	return out, nil
}
