// SPDX-License-Identifier: MIT

// Package sequence generates deterministic integer inputs for the kernels:
// arithmetic ramps (the "data[i] = i*2" fixtures) and seeded pseudo-random
// slices for property tests and benchmarks.
//
// Contract:
//   • Generators return a fresh slice of length n, or ErrBadSize for n < 0
//     or n > MaxLen.
//   • Output is a pure function of (n, options); no global state, no clocks.
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil *rand.Rand, empty range). Generators themselves never panic.
//
// Usage:
//
//	data, _ := sequence.Ramp(100, sequence.WithStep(2))          // 0, 2, 4, ..., 198
//	rnd, _ := sequence.Random(64, sequence.WithSeed(7))           // reproducible
//	neg, _ := sequence.Random(8, sequence.WithRange(-10, 10))     // values in [-10, 10)
//
// Concurrency:
//   • math/rand.Rand is not goroutine-safe; do not share one passed via
//     WithRand across goroutines.
package sequence
