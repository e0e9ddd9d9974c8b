// SPDX-License-Identifier: MIT

// Package fibonacci computes Fibonacci numbers three ways:
//
//	Recursive — the textbook definition, exponential time, no memo
//	Iterative — constant-space accumulator, O(n)
//	Memo      — explicit table keyed by index, amortised O(1) per lookup
//
// All three satisfy F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2) and agree on every
// index in [0, MaxIndex]. F(MaxIndex+1) does not fit in a 64-bit int, so
// larger indices return ErrOverflow instead of wrapping silently.
//
// SumRange adds F(0) through F(n-1) with whichever implementation the
// caller passes, which is how the recursive reference program uses it:
//
//	total, err := fibonacci.SumRange(20, fibonacci.Recursive) // 10945
//
// Recursive is kept for fidelity and for benchmarking against the other
// two. Prefer Iterative or Memo for anything past n≈35.
package fibonacci
