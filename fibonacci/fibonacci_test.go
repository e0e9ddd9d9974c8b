package fibonacci_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/kernels/fibonacci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recursiveLimit bounds the indices checked against the exponential variant.
const recursiveLimit = 25

// TestBaseCases checks F(0), F(1) and a few known values on every variant.
func TestBaseCases(t *testing.T) {
	known := map[int]int{0: 0, 1: 1, 2: 1, 10: 55, 19: 4181, 20: 6765}
	memo := fibonacci.NewMemo()
	variants := map[string]fibonacci.Func{
		"recursive": fibonacci.Recursive,
		"iterative": fibonacci.Iterative,
		"memo":      memo.At,
	}
	for name, fn := range variants {
		for n, want := range known {
			got, err := fn(n)
			require.NoError(t, err, "%s(%d)", name, n)
			assert.Equal(t, want, got, "%s(%d)", name, n)
		}
	}
}

// TestRecurrence checks F(n) = F(n-1) + F(n-2) up to MaxIndex.
func TestRecurrence(t *testing.T) {
	for n := 2; n <= fibonacci.MaxIndex; n++ {
		a, err := fibonacci.Iterative(n - 1)
		require.NoError(t, err)
		b, err := fibonacci.Iterative(n - 2)
		require.NoError(t, err)
		c, err := fibonacci.Iterative(n)
		require.NoError(t, err)
		assert.Equal(t, a+b, c, "n=%d", n)
	}
}

// TestVariantsAgree compares all implementations index by index.
func TestVariantsAgree(t *testing.T) {
	memo := fibonacci.NewMemo()
	for n := 0; n <= fibonacci.MaxIndex; n++ {
		it, err := fibonacci.Iterative(n)
		require.NoError(t, err)
		m, err := memo.At(n)
		require.NoError(t, err)
		assert.Equal(t, it, m, "memo n=%d", n)

		if n <= recursiveLimit {
			r, err := fibonacci.Recursive(n)
			require.NoError(t, err)
			assert.Equal(t, it, r, "recursive n=%d", n)
		}
	}
	assert.Equal(t, fibonacci.MaxIndex+1, memo.Len())
}

// TestMaxIndex pins the last representable value.
func TestMaxIndex(t *testing.T) {
	got, err := fibonacci.Iterative(fibonacci.MaxIndex)
	require.NoError(t, err)
	assert.Equal(t, 7540113804746346429, got)
}

// TestErrors covers the negative and overflow policies on every entry point.
func TestErrors(t *testing.T) {
	memo := fibonacci.NewMemo()
	for name, fn := range map[string]fibonacci.Func{
		"recursive": fibonacci.Recursive,
		"iterative": fibonacci.Iterative,
		"memo":      memo.At,
	} {
		_, err := fn(-1)
		assert.ErrorIs(t, err, fibonacci.ErrNegativeIndex, name)
		_, err = fn(fibonacci.MaxIndex + 1)
		assert.ErrorIs(t, err, fibonacci.ErrOverflow, name)
	}

	_, err := fibonacci.SumRange(-1, nil)
	assert.ErrorIs(t, err, fibonacci.ErrNegativeIndex)
	_, err = fibonacci.SumRange(fibonacci.MaxIndex, nil)
	assert.ErrorIs(t, err, fibonacci.ErrOverflow)
}

// TestSumRange checks the reference program loop and the closed form
// Σ F(0..n-1) = F(n+1) - 1.
func TestSumRange(t *testing.T) {
	got, err := fibonacci.SumRange(20, fibonacci.Recursive)
	require.NoError(t, err)
	assert.Equal(t, 10945, got, "Σ F(0..19)")

	got, err = fibonacci.SumRange(19, fibonacci.Recursive)
	require.NoError(t, err)
	assert.Equal(t, 6764, got, "Σ F(0..18)")

	zero, err := fibonacci.SumRange(0, nil)
	require.NoError(t, err)
	assert.Zero(t, zero)

	for n := 0; n < fibonacci.MaxIndex; n++ {
		sum, err := fibonacci.SumRange(n, nil)
		require.NoError(t, err)
		next, err := fibonacci.Iterative(n + 1)
		require.NoError(t, err)
		assert.Equal(t, next-1, sum, "n=%d", n)
	}
}

// TestMemo_Concurrent extends the same table from several goroutines.
func TestMemo_Concurrent(t *testing.T) {
	memo := fibonacci.NewMemo()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for n := start; n <= fibonacci.MaxIndex; n += 8 {
				_, _ = memo.At(n)
			}
		}(w)
	}
	wg.Wait()

	want, err := fibonacci.Iterative(fibonacci.MaxIndex)
	require.NoError(t, err)
	got, err := memo.At(fibonacci.MaxIndex)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
