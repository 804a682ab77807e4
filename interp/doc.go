// Package interp fits the unique interpolating polynomial through a
// prefix of an integer sequence sampled at x = 1, 2, ..., n.
//
// 🚀 How does it work?
//
//	Given n sample values y1..yn, the package builds the n×n
//	Vandermonde-style system whose row i holds the monomial basis
//	(i+1)^(n-1), ..., (i+1), 1 — descending powers of the sample
//	position — and solves it with matrix.Solve. The real-valued
//	coefficients are rounded to the nearest integer: for the
//	integer-coefficient generating functions this engine targets,
//	rounding is a correctness step, not an approximation.
//
// ✨ What you get back:
//
//	A *Polynomial holding the integer coefficient vector (highest
//	degree first) with an exact integer evaluator:
//
//	  p, err := interp.Interpolate([]int64{1, 8, 27})
//	  p.Eval(4) // 58 — the quadratic fit of the first three cubes
//
//	Eval never touches floating point, so extrapolated terms are exact
//	no matter how far x lies outside the fitted range.
//
// Edge case: a single sample yields a degree-0 constant polynomial;
// Eval returns that constant for every x.
//
// Complexity: Interpolate is O(n³) (dominated by the solve);
// Eval is O(n) multiplications in int64 arithmetic.
package interp
