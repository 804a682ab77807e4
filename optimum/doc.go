// Package optimum implements the "optimum polynomial" scan: for each
// prefix of a reference sequence it fits the lowest-degree polynomial
// through that prefix, finds the first term where the fit diverges from
// the true sequence, and sums the diverging values.
//
// 🚀 Terminology (after Project Euler problem 101):
//
//	• OP(k, n) — value at position n of the unique degree-(k-1)
//	  polynomial fitting the first k sequence values.
//	• FIT      — "first incorrect term": the smallest n where OP(k, n)
//	  diverges from the true sequence.
//	• BOP      — a "bad OP": a fit whose FIT exists.
//
// ⚙️ Usage:
//
//	u := optimum.AlternatingPower(10) // 1 - n + n² - … + n¹⁰
//	opts := optimum.DefaultOptions()  // order 10, sequential
//
//	sum, err := optimum.SumOfFITs(ctx, u, opts)
//	// sum == 37076114526
//
// Per-order detail is available through Fits, which reports each
// order's first incorrect term and the bad polynomial's value there.
//
// Concurrency: with Options.Parallel the per-order pipelines run on
// errgroup goroutines. Each order owns its matrices exclusively and the
// final reduction happens in order, so the result is deterministic and
// identical to the sequential mode.
package optimum
