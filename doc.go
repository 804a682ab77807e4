// Package optipoly finds "optimum polynomials": for each prefix of a
// numeric sequence it fits the lowest-degree polynomial through the
// prefix and locates where that fit first disagrees with the sequence.
//
// 🚀 What is optipoly?
//
//	A small, deterministic numeric library built around one engine:
//		• matrix/  — dense float64 matrices + Gaussian elimination with
//		  partial pivoting and back substitution
//		• interp/  — Vandermonde-style polynomial interpolation over
//		  integer samples, with an exact int64 evaluator
//		• optimum/ — the OP / FIT / BOP scan-and-sum orchestration,
//		  sequential or per-order parallel
//		• cmd/optipoly — runs the full degree-10 problem end to end
//
// ✨ Why choose optipoly?
//
//   - Fail-fast contracts – sentinel errors, errors.Is matching, no panics
//   - Deterministic – fixed loop orders, no global state, identical runs
//   - Exact where it counts – integer coefficients, integer evaluation
//   - Synchronous core – each solve owns its buffers; parallelism is an
//     opt-in layer over independent solves
//
// Quick taste (the cube sequence):
//
//	u := func(n int64) int64 { return n * n * n }
//	opts := optimum.DefaultOptions()
//	opts.Order = 3
//	sum, _ := optimum.SumOfFITs(ctx, u, opts) // 1 + 15 + 58 = 74
//
// Start with optimum for the high-level scan, or matrix.Solve if you
// only need the linear-system engine.
package optipoly
