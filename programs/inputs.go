// SPDX-License-Identifier: MIT

package programs

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/kernels/arrayops"
	"github.com/katalvlaran/kernels/fibonacci"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInputs indicates that Inputs.Validate found at least one bad field.
var ErrInvalidInputs = errors.New("programs: invalid inputs")

// Fibonacci methods accepted in FibonacciInput.Method.
const (
	MethodRecursive = "recursive"
	MethodIterative = "iterative"
	MethodMemo      = "memo"
)

// Upper bounds on the sized inputs. Past maxRecursiveCount the exponential
// recursion takes minutes; the other two keep allocation and the O(n³)
// product within seconds.
const (
	maxRecursiveCount = 40
	maxSquaresCount   = 1 << 20
	maxMatrixSize     = 1024
)

// Inputs holds the literal inputs of every program.
type Inputs struct {
	Max        MaxInput        `yaml:"max"`
	Fibonacci  FibonacciInput  `yaml:"fibonacci"`
	GCD        GCDInput        `yaml:"gcd"`
	Polynomial PolynomialInput `yaml:"polynomial"`
	Search     SearchInput     `yaml:"search"`
	Sum        SumInput        `yaml:"sum"`
	Squares    SquaresInput    `yaml:"squares"`
	Matrix     MatrixInput     `yaml:"matrix"`
}

// MaxInput feeds array_operations.
type MaxInput struct {
	Values []int `yaml:"values"`
}

// FibonacciInput feeds fibonacci_recursive: Σ F(i) for i < Count.
type FibonacciInput struct {
	Count  int    `yaml:"count"`
	Method string `yaml:"method"` // recursive (default), iterative, memo
}

// GCDInput feeds gcd_algorithm.
type GCDInput struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// PolynomialInput feeds polynomial_eval; coefficients are ascending.
type PolynomialInput struct {
	X            float64   `yaml:"x"`
	Coefficients []float64 `yaml:"coefficients"`
}

// SearchInput feeds string_search.
type SearchInput struct {
	Text    string `yaml:"text"`
	Pattern string `yaml:"pattern"`
}

// SumInput feeds sum_unoptimized and sum_optimized.
type SumInput struct {
	Values []int `yaml:"values"`
}

// SquaresInput feeds sum_of_squares over the ramp i*Step, i < Count.
type SquaresInput struct {
	Count int `yaml:"count"`
	Step  int `yaml:"step"`
}

// MatrixInput feeds matrix_multiplication with two Size×Size matrices.
type MatrixInput struct {
	Size int `yaml:"size"`
}

// DefaultInputs returns the literals hard-coded in the original programs.
func DefaultInputs() Inputs {
	return Inputs{
		Max:       MaxInput{Values: []int{3, 5, 7, 2, 8, 6, 4, 10, 12, 1}},
		Fibonacci: FibonacciInput{Count: 20, Method: MethodRecursive},
		GCD:       GCDInput{A: 48, B: 18},
		Polynomial: PolynomialInput{
			X:            2.5,
			Coefficients: []float64{1.0, 2.0, 3.0, 4.0},
		},
		Search: SearchInput{
			Text:    "ABABDABACDABABCABCABCABCABC",
			Pattern: "ABABCAB",
		},
		Sum:     SumInput{Values: []int{1, 2, 3, 4, 5}},
		Squares: SquaresInput{Count: 100, Step: 2},
		Matrix:  MatrixInput{Size: 50},
	}
}

// ParseInputs decodes YAML over DefaultInputs. Absent keys keep their
// defaults; present lists replace the default list wholesale.
func ParseInputs(data []byte) (Inputs, error) {
	in := DefaultInputs()
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Inputs{}, fmt.Errorf("failed to parse inputs YAML: %w", err)
	}

	return in, nil
}

// LoadInputs reads a YAML inputs file from disk. See ParseInputs.
func LoadInputs(path string) (Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Inputs{}, err
	}

	return ParseInputs(data)
}

// Validate reports every invalid field at once. The returned error matches
// ErrInvalidInputs and, where one exists, the kernel's own sentinel.
// Runner checks only the sections its selected programs read; Validate
// checks them all.
func (in Inputs) Validate() error {
	return invalid(multierr.Combine(
		in.checkMax(),
		in.checkFibonacci(),
		in.checkSquares(),
		in.checkMatrix(),
	))
}

// invalid tags a non-nil section error with ErrInvalidInputs.
func invalid(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidInputs, err)
}

func (in Inputs) checkMax() error {
	if len(in.Max.Values) == 0 {
		return fmt.Errorf("max.values: %w", arrayops.ErrEmptyInput)
	}

	return nil
}

func (in Inputs) checkFibonacci() error {
	var err error
	switch in.Fibonacci.Method {
	case MethodRecursive, "":
		if in.Fibonacci.Count > maxRecursiveCount {
			err = multierr.Append(err, fmt.Errorf("fibonacci.count: %d exceeds %d for the recursive method", in.Fibonacci.Count, maxRecursiveCount))
		}
	case MethodIterative, MethodMemo:
	default:
		err = multierr.Append(err, fmt.Errorf("fibonacci.method: unknown method %q", in.Fibonacci.Method))
	}
	if in.Fibonacci.Count < 0 {
		err = multierr.Append(err, fmt.Errorf("fibonacci.count: %w", fibonacci.ErrNegativeIndex))
	}
	if in.Fibonacci.Count >= fibonacci.MaxIndex {
		err = multierr.Append(err, fmt.Errorf("fibonacci.count: %w", fibonacci.ErrOverflow))
	}

	return err
}

func (in Inputs) checkSquares() error {
	if in.Squares.Count < 0 || in.Squares.Count > maxSquaresCount {
		return fmt.Errorf("squares.count: must be in [0, %d], got %d", maxSquaresCount, in.Squares.Count)
	}

	return nil
}

func (in Inputs) checkMatrix() error {
	if in.Matrix.Size <= 0 || in.Matrix.Size > maxMatrixSize {
		return fmt.Errorf("matrix.size: must be in [1, %d], got %d", maxMatrixSize, in.Matrix.Size)
	}

	return nil
}
