// SPDX-License-Identifier: MIT
// Package matrix: dense linear-system kernels.
//
// Purpose:
//   - Declare the canonical Gaussian-elimination solver and the MatVec
//     kernel used for residual checks.
//   - Define operation tags and shared constants for determinism and
//     uniform error reporting.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels
//     wrapped via matrixErrorf at the facade.

package matrix

import (
	"fmt"
	"math"
)

// ZeroPivot is the sentinel for detecting a zero pivot during elimination,
// back substitution and extraction.
const ZeroPivot = 0.0

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// solvePrecision is the number of decimal places every extracted solution
// entry is snapped to. Collapses representational noise such as
// 2.000000000000004 back to 2 for well-conditioned integer-coefficient
// systems; it is not a general stability guarantee.
const solvePrecision = 10

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve  = "Solve"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across facades. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// roundTo snaps v to the given number of decimal places.
// For magnitudes where float64 spacing exceeds the requested precision
// the snap is a no-op, matching the usual round-half-away semantics.
// Complexity: O(1).
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x Vector) (Vector, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Prepare result vector y with length rows.
	y := make(Vector, m.r)

	var i, j, base int // indices and row base offset
	var acc, xv float64
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = ZeroSum             // reset accumulator per row
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			xv = x[j]    // read x(j) once per iteration
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv // accumulate a(i,j)*x(j)
			}
		}
		y[i] = acc // store y(i)
	}

	return y, nil // return computed vector
}

// Solve computes x such that a·x = b via Gaussian elimination with
// partial pivoting and back substitution, then snaps every extracted
// entry to 10 decimal places.
//
// Implementation:
//   - Stage 1: Validate a (not nil, square of size n ≥ 1) and b (length n).
//     Build the augmented working matrix [A | b] of shape n×(n+1); the
//     buffer is owned exclusively by this call and a, b stay untouched.
//   - Stage 2: Forward elimination. Row and column cursors advance
//     together; at each step the row with the largest |entry| in the
//     active column (among rows cursor..n-1) is swapped up as pivot.
//     An exact-zero pivot means no remaining row can clear this column:
//     advance the column cursor only and retry (degenerate-column
//     fallback — sufficient for the invertible systems this solver
//     serves, NOT a general rank-deficiency treatment).
//   - Stage 3: Back substitution sweeping columns 1..n-1 ascending,
//     clearing every entry above the diagonal; the augmented matrix is
//     diagonal afterwards.
//   - Stage 4: Extraction. x[i] = aug[i][n] / aug[i][i], rounded via
//     roundTo. A zero diagonal at stage 3 or 4 returns ErrSingular
//     instead of producing NaN/Inf.
//
// Behavior highlights:
//   - Deterministic pivot scan (first maximal row wins) and fixed loop
//     orders; identical inputs give identical outputs.
//   - One O(n²) allocation for the augmented buffer, one O(n) for x.
//
// Inputs:
//   - a: square system matrix (n×n), invertible under the package contract.
//   - b: right-hand side of length n.
//
// Returns:
//   - Vector: solution x with a·x ≈ b within floating-point tolerance.
//   - error : validation/singularity failures wrapped with opSolve.
//
// Errors:
//   - ErrNilMatrix         (nil a or nil b).
//   - ErrDimensionMismatch (non-square a, or len(b) != n).
//   - ErrSingular          (zero pivot where a unique solution requires one).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - The caller guarantees invertibility; ErrSingular signals a contract
//     violation, not an expected path. Do not retry — the computation is
//     deterministic and would fail identically.
func Solve(a *Dense, b Vector) (Vector, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	// Validate b is not nil and matches the system size.
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Stage 1: build the augmented matrix [A | b], shape n×(n+1),
	// flat row-major with stride n+1. Exclusively owned by this call.
	width := n + 1
	aug := make([]float64, n*width)
	var i int
	for i = 0; i < n; i++ {
		copy(aug[i*width:i*width+n], a.data[i*n:(i+1)*n])
		aug[i*width+n] = b[i]
	}

	// Stage 2: forward elimination with partial pivoting.
	var (
		row, col, r, c int     // cursors and loop iterators
		pivotRow       int     // row index holding the current pivot
		best, v        float64 // pivot scan temporaries
		pivot, ratio   float64 // elimination temporaries
	)
	for row < n && col < n {
		// Pivot selection: largest |value| in column col among rows col..n-1.
		pivotRow = col
		best = math.Abs(aug[col*width+col])
		for r = col + 1; r < n; r++ {
			if v = math.Abs(aug[r*width+col]); v > best {
				best, pivotRow = v, r
			}
		}
		if aug[pivotRow*width+col] == ZeroPivot {
			// No pivot exists in this column for any remaining row:
			// skip the column, keep the row cursor fixed.
			col++
			continue
		}
		// Swap the pivot row into the current row position.
		if pivotRow != row {
			for c = 0; c < width; c++ {
				aug[row*width+c], aug[pivotRow*width+c] = aug[pivotRow*width+c], aug[row*width+c]
			}
		}
		// Eliminate: zero out column col for every row below the cursor.
		pivot = aug[row*width+col]
		for r = row + 1; r < n; r++ {
			ratio = aug[r*width+col] / pivot
			aug[r*width+col] = 0 // exact zero, not a subtraction residue
			for c = col + 1; c < width; c++ {
				aug[r*width+c] -= aug[row*width+c] * ratio
			}
		}
		row++
		col++
	}

	// Stage 3: back substitution — clear entries above each diagonal,
	// sweeping columns ascending. Afterwards the matrix is diagonal.
	for col = 1; col < n; col++ {
		pivot = aug[col*width+col]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		for row = 0; row < col; row++ {
			ratio = aug[row*width+col] / pivot
			for c = col; c < width; c++ {
				aug[row*width+c] -= aug[col*width+c] * ratio
			}
		}
	}

	// Stage 4: extract the solution, snapping representational noise.
	x := make(Vector, n)
	for i = 0; i < n; i++ {
		pivot = aug[i*width+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = roundTo(aug[i*width+n]/pivot, solvePrecision)
	}

	return x, nil
}
