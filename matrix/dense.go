// SPDX-License-Identifier: MIT

// Package matrix provides a row-major integer matrix and the naive i-j-k
// product over it.
//
// Dense stores r*c ints in a flat slice (offset = i*c + j). Public
// accessors return errors instead of panicking; Mul keeps the textbook loop
// order so it stays a faithful baseline for the blocked or transposed
// variants people usually compare it against.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Mul: O(n*m*p).
package matrix

import (
	"fmt"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// MaxElements bounds rows*cols for any Dense; larger shapes are rejected
// with ErrInvalidDimensions instead of failing inside make.
const MaxElements = 1 << 30

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, len == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0 and rows*cols <= MaxElements.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// division form: rows*cols itself may overflow
	if rows > MaxElements/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): exceeds %d elements: %w", rows, cols, MaxElements, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewSquare is shorthand for NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds
// wrapped with the caller's method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill assigns f(i, j) to every cell, row by row.
func (m *Dense) Fill(f func(i, j int) int) {
	for i := 0; i < m.r; i++ {
		off := i * m.c
		for j := 0; j < m.c; j++ {
			m.data[off+j] = f(i, j)
		}
	}
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
