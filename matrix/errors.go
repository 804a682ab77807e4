// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still
// match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (r <= 0 or c <= 0, or an empty row set). Constructors must
	// validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: a non-square system matrix, a ragged row set, or a
	// vector whose length does not match the matrix size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument)
	// or a nil vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when elimination cannot produce a
	// non-zero pivot for a needed column and a unique solution cannot
	// be extracted. Under the package contract (invertible systems
	// only) this is a defensive signal, not an expected runtime path.
	ErrSingular = errors.New("matrix: singular matrix")
)
