// SPDX-License-Identifier: MIT

// Package matrix: domain types shared across the dense container and kernels.
// This file intentionally contains ONLY type-level surface (element
// constraint, public Matrix interface). Errors live in errors.go and
// validators in validators.go per the package conventions.
package matrix

// Numeric is the element constraint for all matrix types in this package.
// It admits every Go numeric kind (and named types derived from them) that
// supports copy, comparison with ==, addition, and multiplication. The zero
// value of any member type is its additive identity, and the untyped
// constant 1 converts to each member as the multiplicative identity —
// NewIdentity relies on both properties.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix represents a two-dimensional mutable array of T values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// kernels accept it and fast-path on the concrete *Dense[T].
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Numeric] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
