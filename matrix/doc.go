// Package matrix provides the dense linear-algebra core of optipoly:
// a row-major float64 matrix type and a Gaussian-elimination solver.
//
// 🚀 What lives here?
//
//	• Dense      — row-major matrix backed by a flat []float64
//	• Vector     — a plain column vector ([]float64)
//	• Solve      — A·x = b via partial pivoting + back substitution
//	• MatVec     — y = A·x, used for residual checks
//	• Validators — canonical nil/shape/length guards
//
// ✨ Design rules:
//
//   - Fail-fast validation — every public entry point checks its inputs
//     and returns a package sentinel (ErrNilMatrix, ErrDimensionMismatch,
//     ErrSingular, …) matched via errors.Is.
//   - Exclusive ownership — Solve builds its own augmented working
//     buffer, mutates it in place, and discards it; inputs are never
//     modified and nothing is shared across calls.
//   - Deterministic kernels — fixed loop orders, no randomness, no
//     global state; identical inputs give identical outputs.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{
//	  {2, 1, -1},
//	  {-3, -1, 2},
//	  {-2, 1, 2},
//	})
//	x, err := matrix.Solve(a, matrix.Vector{8, -11, -3})
//	// x = [2 3 -1]
//
// Performance: Solve is O(n³) time, O(n²) memory for the augmented
// buffer. The solver targets small, well-conditioned, invertible
// systems (Vandermonde-style polynomial fits); it is not a general
// rank-revealing elimination.
package matrix
