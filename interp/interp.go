package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/optipoly/matrix"
)

// ErrNoSamples indicates that an empty sample set was passed to Interpolate.
var ErrNoSamples = errors.New("interp: sample set must be non-empty")

// Polynomial is an integer-coefficient polynomial produced by
// Interpolate. Coefficients are ordered from the highest degree down to
// the constant term and are immutable after construction.
type Polynomial struct {
	coeffs []int64 // coeffs[0] is the leading coefficient
}

// Degree returns the polynomial degree (len(coeffs) - 1).
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns a copy of the coefficient vector, highest degree first.
// The copy keeps the internal vector immutable.
func (p *Polynomial) Coeffs() []int64 {
	out := make([]int64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Eval computes p(x) in exact int64 arithmetic:
//
//	p(x) = Σ coeffs[j] · x^(degree-j)  for j = 0..degree
//
// Horner's scheme keeps it to degree multiplications and additions with
// no floating-point round-trip, so extrapolation stays exact.
// Complexity: O(degree).
func (p *Polynomial) Eval(x int64) int64 {
	var acc int64
	for _, c := range p.coeffs {
		acc = acc*x + c
	}

	return acc
}

// Interpolate fits the unique degree-(n-1) polynomial through the points
// (1, samples[0]), (2, samples[1]), ..., (n, samples[n-1]).
//
// Implementation:
//   - Stage 1: Validate the sample set is non-empty.
//   - Stage 2: Build the Vandermonde-style system — row i, column j holds
//     (i+1)^(n-1-j), descending powers — and the right-hand side from the
//     samples directly.
//   - Stage 3: Solve via matrix.Solve and round every coefficient to the
//     nearest integer. The target generating functions have integer
//     coefficients by construction, so rounding restores exactness.
//
// Errors:
//   - ErrNoSamples on an empty input.
//   - matrix.ErrSingular propagated from the solver (cannot occur for
//     distinct sample positions; defensive).
//
// Complexity: O(n³) time, O(n²) memory.
func Interpolate(samples []int64) (*Polynomial, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrNoSamples
	}

	// Build the coefficient matrix and right-hand side.
	rows := make([][]float64, n)
	rhs := make(matrix.Vector, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = float64(ipow(int64(i+1), n-1-j))
		}
		rhs[i] = float64(samples[i])
	}
	vand, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("interp: Interpolate: %w", err)
	}

	// Solve for the real-valued coefficients.
	solved, err := matrix.Solve(vand, rhs)
	if err != nil {
		return nil, fmt.Errorf("interp: Interpolate: %w", err)
	}

	// Round to the integer coefficient vector.
	coeffs := make([]int64, n)
	for i = 0; i < n; i++ {
		coeffs[i] = int64(math.Round(solved[i]))
	}

	return &Polynomial{coeffs: coeffs}, nil
}

// ipow computes base^exp for non-negative exp in int64 arithmetic.
func ipow(base int64, exp int) int64 {
	var out int64 = 1
	for ; exp > 0; exp-- {
		out *= base
	}

	return out
}
