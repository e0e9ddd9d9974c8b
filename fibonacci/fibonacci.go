// SPDX-License-Identifier: MIT

package fibonacci

import (
	"errors"
	"fmt"
	"sync"
)

// MaxIndex is the largest n for which F(n) fits in an int64.
// F(92) = 7540113804746346429; F(93) overflows.
const MaxIndex = 92

var (
	// ErrNegativeIndex indicates n < 0.
	ErrNegativeIndex = errors.New("fibonacci: negative index")

	// ErrOverflow indicates n > MaxIndex.
	ErrOverflow = errors.New("fibonacci: result overflows int64")
)

// Func is any of the interchangeable Fibonacci implementations.
type Func func(n int) (int, error)

// validate applies the shared index policy.
func validate(n int) error {
	if n < 0 {
		return fmt.Errorf("F(%d): %w", n, ErrNegativeIndex)
	}
	if n > MaxIndex {
		return fmt.Errorf("F(%d): %w", n, ErrOverflow)
	}

	return nil
}

// Recursive returns F(n) by direct recursion on the definition.
// Time O(φ^n); no memoisation.
func Recursive(n int) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}

	return recurse(n), nil
}

func recurse(n int) int {
	if n <= 1 {
		return n
	}

	return recurse(n-1) + recurse(n-2)
}

// Iterative returns F(n) with a two-value accumulator.
// Time O(n), memory O(1).
func Iterative(n int) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}

	prev, curr := 0, 1
	for i := 0; i < n; i++ {
		prev, curr = curr, prev+curr
	}

	return prev, nil
}

// Memo caches F(i) for every index computed so far.
// It is safe for concurrent use.
type Memo struct {
	mu    sync.Mutex
	table []int // table[i] == F(i)
}

// NewMemo returns a table seeded with F(0) and F(1).
func NewMemo() *Memo {
	return &Memo{table: []int{0, 1}}
}

// At returns F(n), extending the table up to n on first use.
func (m *Memo) At(n int) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.table); i <= n; i++ {
		m.table = append(m.table, m.table[i-1]+m.table[i-2])
	}

	return m.table[n], nil
}

// Len reports how many indices are currently cached.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.table)
}

// SumRange returns F(0) + F(1) + ... + F(n-1) using fn.
// n == 0 yields 0. A nil fn falls back to Iterative.
//
// Errors:
//   - ErrNegativeIndex if n < 0.
//   - ErrOverflow if n >= MaxIndex; the sum equals F(n+1)-1, which
//     stops fitting in an int64 at n == MaxIndex.
//   - any error returned by fn.
func SumRange(n int, fn Func) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("SumRange(%d): %w", n, ErrNegativeIndex)
	}
	if n >= MaxIndex {
		return 0, fmt.Errorf("SumRange(%d): %w", n, ErrOverflow)
	}
	if fn == nil {
		fn = Iterative
	}

	total := 0
	for i := 0; i < n; i++ {
		v, err := fn(i)
		if err != nil {
			return 0, fmt.Errorf("SumRange(%d): %w", n, err)
		}
		total += v
	}

	return total, nil
}
