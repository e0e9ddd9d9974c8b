// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opMul = "Mul"

// Mul returns the product a×b.
//
// Algorithm (i-j-k, no blocking, no transposition):
//
//	for i < a.Rows:
//	  for j < b.Cols:
//	    C[i][j] = 0
//	    for k < a.Cols:
//	      C[i][j] += A[i][k] * B[k][j]
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch if a.Cols() != b.Rows().
//
// Complexity: O(n*m*p) time, O(n*p) memory for the result.
// Integer overflow wraps, as it does for the operands' element type.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		acc     int
	)
	for i = 0; i < a.r; i++ {
		rowA := i * a.c
		rowR := i * b.c
		for j = 0; j < b.c; j++ {
			acc = 0
			for k = 0; k < a.c; k++ {
				acc += a.data[rowA+k] * b.data[k*b.c+j]
			}
			res.data[rowR+j] = acc
		}
	}

	return res, nil
}
