package polynomial_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/kernels/polynomial"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

// TestEval_Reference checks 1 + 2x + 3x² + 4x³ at x = 2.5.
func TestEval_Reference(t *testing.T) {
	coeffs := []float64{1.0, 2.0, 3.0, 4.0}
	want := 1 + 2*2.5 + 3*2.5*2.5 + 4*2.5*2.5*2.5

	assert.InDelta(t, 87.25, want, eps, "closed form")
	assert.InDelta(t, want, polynomial.Eval(2.5, coeffs), eps, "Eval")
	assert.InDelta(t, want, polynomial.Horner(2.5, coeffs), eps, "Horner")
	assert.Equal(t, "87.25", fmt.Sprintf("%.2f", polynomial.Eval(2.5, coeffs)))
}

// TestEval_Table covers degenerate and signed inputs for both evaluators.
func TestEval_Table(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		coeffs []float64
		want   float64
	}{
		{"empty", 3, nil, 0},
		{"constant", 100, []float64{-2}, -2},
		{"x=0 picks c0", 0, []float64{5, 9, 9}, 5},
		{"x=1 sums", 1, []float64{1, 2, 3, 4}, 10},
		{"x=-1 alternates", -1, []float64{1, 2, 3, 4}, -2},
		{"linear", 0.5, []float64{0, 4}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, polynomial.Eval(tc.x, tc.coeffs), eps, "Eval")
			assert.InDelta(t, tc.want, polynomial.Horner(tc.x, tc.coeffs), eps, "Horner")
		})
	}
}

// TestEval_AgreesWithPow compares both evaluators against math.Pow on a grid.
func TestEval_AgreesWithPow(t *testing.T) {
	coeffs := []float64{0.5, -1.25, 3, 0, -0.75, 2}
	for x := -3.0; x <= 3.0; x += 0.25 {
		want := 0.0
		for i, c := range coeffs {
			want += c * math.Pow(x, float64(i))
		}
		assert.InDelta(t, want, polynomial.Eval(x, coeffs), eps, "Eval x=%v", x)
		assert.InDelta(t, want, polynomial.Horner(x, coeffs), eps, "Horner x=%v", x)
	}
}

// ExampleEval reproduces the reference program output.
func ExampleEval() {
	coeffs := []float64{1.0, 2.0, 3.0, 4.0}
	fmt.Printf("Result: %.2f\n", polynomial.Eval(2.5, coeffs))
	// Output:
	// Result: 87.25
}
