// Package optimum defines options and result types for the OP/FIT scan.
package optimum

import "errors"

var (
	// ErrNilSequence indicates that a nil reference sequence was supplied.
	ErrNilSequence = errors.New("optimum: nil sequence")

	// ErrNilPolynomial indicates that a nil fitted polynomial was supplied.
	ErrNilPolynomial = errors.New("optimum: nil polynomial")

	// ErrBadOrder indicates a non-positive Options.Order.
	ErrBadOrder = errors.New("optimum: order must be >= 1")

	// ErrNoDivergence indicates that a fitted polynomial agreed with the
	// reference sequence for every scanned term up to Options.MaxScan —
	// the fit is not a BOP within the scanned domain. Without the scan
	// bound this case would loop forever.
	ErrNoDivergence = errors.New("optimum: fit never diverges within scan bound")
)

// Sequence is a caller-supplied reference generating function u(n).
// It must be deterministic; SumOfFITs may call it from several
// goroutines when Options.Parallel is set.
type Sequence func(n int64) int64

// Defaults for Options; DefaultOptions is the single source of truth
// for zero-value behavior.
const (
	// DefaultOrder matches the degree-10 target problem: prefixes k = 1..10.
	DefaultOrder = 10

	// DefaultMaxScan bounds the divergence scan. For a reference
	// sequence of true polynomial degree d, every fit of order k ≤ d
	// diverges at n = k+1, so the bound is generous; it exists to turn
	// an exact fit (no divergence) into ErrNoDivergence instead of an
	// infinite loop.
	DefaultMaxScan = 1 << 10
)

// Options configures the OP/FIT scan.
//
// Fields:
//   - Order    — number of prefix fits: k = 1..Order.
//   - MaxScan  — largest n probed while hunting a fit's first incorrect
//     term; values ≤ 0 fall back to DefaultMaxScan.
//   - Parallel — fit and scan each order on its own goroutine.
//
// Example:
//
//	opts := optimum.DefaultOptions()
//	opts.Parallel = true
//	sum, err := optimum.SumOfFITs(ctx, u, opts)
type Options struct {
	Order    int
	MaxScan  int64
	Parallel bool
}

// DefaultOptions returns the canonical configuration: the full order-10
// problem, default scan bound, sequential execution.
func DefaultOptions() Options {
	return Options{
		Order:    DefaultOrder,
		MaxScan:  DefaultMaxScan,
		Parallel: false,
	}
}

// Fit reports one order's outcome: the first incorrect term and the bad
// polynomial's value at it.
type Fit struct {
	// Order is the prefix length k the polynomial was fitted on.
	Order int

	// Term is the smallest n where the fit diverges from the sequence.
	Term int64

	// Value is OP(Order, Term) — the diverging value contributed to the sum.
	Value int64
}
