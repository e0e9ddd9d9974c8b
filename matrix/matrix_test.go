package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kernels/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a matrix from row literals or fails the test.
func mustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	m.Fill(func(i, j int) int { return rows[i][j] })

	return m
}

// TestNewDense_InvalidDimensions verifies shape validation, including
// shapes whose element count overflows int or exceeds MaxElements.
func TestNewDense_InvalidDimensions(t *testing.T) {
	shapes := [][2]int{
		{0, 1}, {1, 0}, {-1, 3}, {0, 0},
		{1 << 32, 1 << 32},
		{math.MaxInt, 2},
		{2, math.MaxInt},
		{matrix.MaxElements, 2},
		{matrix.MaxElements + 1, 1},
	}
	for _, shape := range shapes {
		m, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
		assert.Nil(t, m, "shape %v", shape)
	}

	_, err := matrix.NewSquare(1 << 16)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "65536² exceeds MaxElements")
}

// TestAtSet_Bounds verifies in-range round trips and out-of-range errors.
func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 42))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(0, 3, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.Contains(t, err.Error(), "Dense.Set(0,3)")
}

// TestClone_Independent verifies deep copy semantics.
func TestClone_Independent(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, 99))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1, v, "original must not change")
	assert.False(t, m.Equal(cp))
}

// TestMul_Small checks a hand-computed 2x3 by 3x2 product.
func TestMul_Small(t *testing.T) {
	a := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[58, 64]\n[139, 154]\n", c.String())
}

// TestMul_Identity verifies A·I = I·A = A.
func TestMul_Identity(t *testing.T) {
	a := mustDense(t, [][]int{{2, -1, 0}, {5, 3, 7}, {-4, 8, 1}})
	id, err := matrix.NewSquare(3)
	require.NoError(t, err)
	id.Fill(func(i, j int) int {
		if i == j {
			return 1
		}
		return 0
	})

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.True(t, a.Equal(left), "I·A")
	assert.True(t, a.Equal(right), "A·I")
}

// TestMul_Errors covers nil operands and mismatched inner dimensions.
func TestMul_Errors(t *testing.T) {
	a := mustDense(t, [][]int{{1, 2}})
	_, err := matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Reference checks the 50x50 reference program:
// A[i][j] = i+j, B[i][j] = i-j, so C[0][0] = Σ k² for k < 50.
func TestMul_Reference(t *testing.T) {
	const size = 50
	a, err := matrix.NewSquare(size)
	require.NoError(t, err)
	b, err := matrix.NewSquare(size)
	require.NoError(t, err)
	a.Fill(func(i, j int) int { return i + j })
	b.Fill(func(i, j int) int { return i - j })

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 40425, v)

	// Spot-check an interior cell against the direct sum.
	want := 0
	for k := 0; k < size; k++ {
		want += (7 + k) * (k - 13)
	}
	got, err := c.At(7, 13)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
