// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors (bad options).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. DO NOT %w wrap these sentinels when returning directly; if
// context is essential (shapes, indices), wrap at the call site with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Dense construction must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, or Mul where
	// a.Cols != b.Rows. Call sites wrap it with both operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Det) but
	// the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required by the numeric policy (ingestion via NewDenseFromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRagged signals rows of unequal length at ingestion; matrices
	// must be rectangular.
	ErrRagged = errors.New("matrix: rows have unequal length")

	// ErrEmpty signals an ingestion attempt with zero rows or an empty
	// row; a matrix has at least one row and one column.
	ErrEmpty = errors.New("matrix: matrix must have at least one row and one column")
)
