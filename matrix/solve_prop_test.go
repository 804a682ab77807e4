package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/optipoly/matrix"
)

// randomDominantSystem derives a deterministic, strictly diagonally
// dominant n×n system from a seed. Diagonal dominance guarantees the
// matrix is invertible, which is the solver's contract.
func randomDominantSystem(seed int64, n int) (*matrix.Dense, matrix.Vector) {
	rng := rand.New(rand.NewSource(seed))

	rows := make([][]float64, n)
	b := make(matrix.Vector, n)
	var i, j int
	var rowSum float64
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		rowSum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			rows[i][j] = rng.Float64()*20 - 10 // off-diagonal in [-10, 10)
			rowSum += math.Abs(rows[i][j])
		}
		// Diagonal strictly exceeds the off-diagonal row sum.
		rows[i][i] = rowSum + 1 + rng.Float64()
		if rng.Intn(2) == 1 {
			rows[i][i] = -rows[i][i]
		}
		b[i] = rng.Float64()*200 - 100
	}

	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err) // unreachable: shape is constructed valid
	}

	return a, b
}

// TestSolve_ResidualProperty checks, over randomized invertible systems,
// that Solve produces x with |a·x - b| within tolerance elementwise.
func TestSolve_ResidualProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("a·Solve(a,b) ≈ b for invertible systems", prop.ForAll(
		func(seed int64, n int) bool {
			a, b := randomDominantSystem(seed, n)

			x, err := matrix.Solve(a, b)
			if err != nil {
				return false
			}
			ax, err := matrix.MatVec(a, x)
			if err != nil {
				return false
			}
			for i := range b {
				if math.Abs(ax[i]-b[i]) > 1e-6 {
					return false
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
