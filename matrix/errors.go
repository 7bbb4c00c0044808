// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers
// (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/arity -> nil operand -> index bounds -> dimension mismatch
// -> structural requirements (ErrNonSquare) -> vector length.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrArityMismatch indicates that a construction entry point received the
	// wrong number of values: an element pack whose count is neither 1 nor
	// rows*cols, a row list with the wrong number of rows, or a row of the
	// wrong length. Wrappers name expected vs actual counts.
	ErrArityMismatch = errors.New("matrix: wrong number of construction values")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Row/ColView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub/Hadamard with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrVecLength indicates that a vector operand's length does not match the
	// matrix dimension it pairs with (MatVec requires len(x) == Cols).
	ErrVecLength = errors.New("matrix: vector length mismatch")
)
