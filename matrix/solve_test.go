package matrix_test

import (
	"testing"

	"github.com/katalvlaran/optipoly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Identity verifies Solve(I, b) == b for several sizes.
func TestSolve_Identity(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10} {
		id, err := matrix.Identity(n)
		require.NoError(t, err)

		b := make(matrix.Vector, n)
		for i := range b {
			b[i] = float64(i + 1)
		}

		x, err := matrix.Solve(id, b)
		require.NoError(t, err, "identity system of size %d", n)
		assert.Equal(t, b, x, "Solve(I, b) must return b for n=%d", n)
	}
}

// TestSolve_Known3x3 solves a textbook 3×3 system with an exact integer
// solution: the rounding step must return the integers exactly.
func TestSolve_Known3x3(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	require.NoError(t, err)

	x, err := matrix.Solve(a, matrix.Vector{8, -11, -3})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{2, 3, -1}, x)
}

// TestSolve_SingleElement covers the n = 1 degenerate system.
func TestSolve_SingleElement(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{4}})
	require.NoError(t, err)

	x, err := matrix.Solve(a, matrix.Vector{10})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{2.5}, x)
}

// TestSolve_PivotSwap forces a row swap: the leading entry of the first
// row is zero, so partial pivoting must bring a lower row up.
func TestSolve_PivotSwap(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)

	x, err := matrix.Solve(a, matrix.Vector{3, 5})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{5, 3}, x)
}

// TestSolve_InputsUntouched ensures Solve never mutates its operands.
func TestSolve_InputsUntouched(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	require.NoError(t, err)
	b := matrix.Vector{3, 5}

	_, err = matrix.Solve(a, b)
	require.NoError(t, err)

	got, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "system matrix must stay untouched")
	assert.Equal(t, matrix.Vector{3, 5}, b, "rhs must stay untouched")
}

// TestSolve_RoundingCollapsesNoise checks that near-integer float results
// are snapped to exact integers by the 10-decimal rounding step.
func TestSolve_RoundingCollapsesNoise(t *testing.T) {
	// 1/3 + 2/3 arithmetic tends to leave 1e-16 scale residue.
	a, err := matrix.NewDenseFromRows([][]float64{
		{1.0 / 3.0, 2.0 / 3.0},
		{2.0 / 3.0, 1.0 / 3.0},
	})
	require.NoError(t, err)

	// Exact solution of a·x = b is x = [1, 1] for b = row sums.
	x, err := matrix.Solve(a, matrix.Vector{1, 1})
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{1, 1}, x, "noise must be snapped away")
}

// TestSolve_DimensionErrors exercises the boundary validation.
func TestSolve_DimensionErrors(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	square, err := matrix.Identity(2)
	require.NoError(t, err)

	_, err = matrix.Solve(rect, matrix.Vector{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "non-square matrix must error")

	_, err = matrix.Solve(square, matrix.Vector{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "vector length mismatch must error")

	_, err = matrix.Solve(nil, matrix.Vector{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil matrix must error")

	_, err = matrix.Solve(square, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil vector must error")
}

// TestSolve_Singular verifies that rank-deficient systems surface
// ErrSingular instead of NaN/Inf entries.
func TestSolve_Singular(t *testing.T) {
	cases := map[string][][]float64{
		"duplicate rows": {{1, 1}, {1, 1}},
		"zero column":    {{0, 1}, {0, 2}},
		"zero matrix":    {{0, 0}, {0, 0}},
		"zero 1x1":       {{0}},
	}

	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			a, err := matrix.NewDenseFromRows(rows)
			require.NoError(t, err)

			b := make(matrix.Vector, len(rows))
			for i := range b {
				b[i] = float64(i + 1)
			}

			_, err = matrix.Solve(a, b)
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestSolve_ResidualWithinTolerance checks a·x ≈ b elementwise within
// 1e-9 on a moderately sized non-trivial system.
func TestSolve_ResidualWithinTolerance(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{4, -2, 1, 3},
		{1, 5, -1, 2},
		{-3, 1, 6, -1},
		{2, -1, 2, 7},
	})
	require.NoError(t, err)
	b := matrix.Vector{11, 9, -5, 19}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)

	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], ax[i], 1e-9, "residual entry %d", i)
	}
}
