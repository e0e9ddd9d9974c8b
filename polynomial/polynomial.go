// SPDX-License-Identifier: MIT

// Package polynomial evaluates real polynomials given by ascending
// coefficients: coeffs[i] is the coefficient of x^i.
//
// Two evaluators are provided and agree up to floating-point rounding:
//
//	Eval   — forward accumulation: result += c[i]*p; p *= x
//	Horner — nested form from the highest term: r = r*x + c[i]
//
// Eval follows the reference program exactly (2n multiplications); Horner
// needs n. Both return 0 for an empty coefficient slice.
package polynomial

// Eval returns Σ coeffs[i]·x^i, keeping a running power of x.
//
// Complexity: O(n) time, O(1) memory.
func Eval(x float64, coeffs []float64) float64 {
	result := 0.0
	power := 1.0
	for _, c := range coeffs {
		result += c * power
		power *= x
	}

	return result
}

// Horner returns Σ coeffs[i]·x^i in nested form, (..(c[n]·x + c[n-1])·x ..)+c[0].
//
// Complexity: O(n) time, O(1) memory.
func Horner(x float64, coeffs []float64) float64 {
	result := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result*x + coeffs[i]
	}

	return result
}
