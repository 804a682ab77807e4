package optimum

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/optipoly/interp"
)

// AlternatingPower returns the alternating-power reference sequence
//
//	u(n) = 1 - n + n² - n³ + … ± n^degree = Σ (-n)^i, i = 0..degree
//
// The degree-10 instance is the target of the full problem, with fixed
// points u(0)=1, u(1)=1, u(5)=8138021, u(10)=9090909091.
func AlternatingPower(degree int) Sequence {
	return func(n int64) int64 {
		var sum, term int64 = 1, 1
		for i := 0; i < degree; i++ {
			term *= -n
			sum += term
		}

		return sum
	}
}

// FirstIncorrectTerm scans n = 1, 2, 3, … for the smallest position
// where p diverges from the reference sequence u.
//
// maxScan bounds the scan (values ≤ 0 fall back to DefaultMaxScan);
// if p agrees with u on the whole scanned range, ErrNoDivergence is
// returned — an exact fit is not a BOP.
// Complexity: O(maxScan · degree) worst case, O(k · degree) typical
// (divergence at n = k+1 for an order-k fit of a higher-degree sequence).
func FirstIncorrectTerm(p *interp.Polynomial, u Sequence, maxScan int64) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("FirstIncorrectTerm: %w", ErrNilPolynomial)
	}
	if u == nil {
		return 0, fmt.Errorf("FirstIncorrectTerm: %w", ErrNilSequence)
	}
	if maxScan <= 0 {
		maxScan = DefaultMaxScan
	}

	for n := int64(1); n <= maxScan; n++ {
		if p.Eval(n) != u(n) {
			return n, nil
		}
	}

	return 0, fmt.Errorf("FirstIncorrectTerm: %w", ErrNoDivergence)
}

// fitOrder runs one order's full pipeline: fit the k-prefix, locate its
// first incorrect term, evaluate the bad polynomial there.
func fitOrder(samples []int64, k int, u Sequence, maxScan int64) (Fit, error) {
	p, err := interp.Interpolate(samples[:k])
	if err != nil {
		return Fit{}, fmt.Errorf("order %d: %w", k, err)
	}

	term, err := FirstIncorrectTerm(p, u, maxScan)
	if err != nil {
		return Fit{}, fmt.Errorf("order %d: %w", k, err)
	}

	return Fit{Order: k, Term: term, Value: p.Eval(term)}, nil
}

// Fits computes, for every order k = 1..opts.Order, the first incorrect
// term of the degree-(k-1) fit of u's k-prefix and the fit's value there.
//
// Implementation:
//   - Stage 1: Validate u and opts; sample u(1)..u(Order) once.
//   - Stage 2: Run the per-order pipelines, sequentially or on errgroup
//     goroutines (each order owns its matrices; no shared mutable state).
//   - Stage 3: Return results indexed by order, ascending — identical in
//     both modes.
//
// Errors: ErrNilSequence, ErrBadOrder, ErrNoDivergence (a fit matched u
// on the whole scan range), or a propagated solver failure. Any error is
// total — no partial result is returned.
func Fits(ctx context.Context, u Sequence, opts Options) ([]Fit, error) {
	if u == nil {
		return nil, fmt.Errorf("Fits: %w", ErrNilSequence)
	}
	if opts.Order < 1 {
		return nil, fmt.Errorf("Fits: %w", ErrBadOrder)
	}
	maxScan := opts.MaxScan
	if maxScan <= 0 {
		maxScan = DefaultMaxScan
	}

	// Sample the reference prefix once; every order reads a sub-slice.
	samples := make([]int64, opts.Order)
	var k int
	for k = 1; k <= opts.Order; k++ {
		samples[k-1] = u(int64(k))
	}

	fits := make([]Fit, opts.Order)

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for k = 1; k <= opts.Order; k++ {
			k := k
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err // sibling failed or caller cancelled; skip the work
				}
				fit, err := fitOrder(samples, k, u, maxScan)
				if err != nil {
					return err
				}
				fits[k-1] = fit // disjoint index per goroutine

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("Fits: %w", err)
		}

		return fits, nil
	}

	for k = 1; k <= opts.Order; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Fits: %w", err)
		}
		fit, err := fitOrder(samples, k, u, maxScan)
		if err != nil {
			return nil, fmt.Errorf("Fits: %w", err)
		}
		fits[k-1] = fit
	}

	return fits, nil
}

// SumOfFITs reduces Fits to the sum of the bad polynomials' values at
// their first incorrect terms — the final answer of the OP/FIT problem.
//
// The reduction runs in ascending order after all fits complete, so the
// sum is deterministic regardless of Options.Parallel.
func SumOfFITs(ctx context.Context, u Sequence, opts Options) (int64, error) {
	fits, err := Fits(ctx, u, opts)
	if err != nil {
		return 0, fmt.Errorf("SumOfFITs: %w", err)
	}

	var sum int64
	for i := range fits {
		sum += fits[i].Value
	}

	return sum, nil
}
