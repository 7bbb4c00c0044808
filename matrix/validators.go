// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/arity checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Every validator is O(1) except ValidateRowLens, which is O(rows).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape – Ensures a requested (rows, cols) shape is constructible.
//
// Inputs: requested row and column counts.
// Returns ErrInvalidDimensions unless both are > 0.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	// Both dimensions must be strictly positive; 0×N matrices are a footgun.
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(1).
func ValidateSameShape[T Numeric](a, b Matrix[T]) error {
	// Compare both dimensions; any difference is a mismatch.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Inputs: Two Matrix values (possibly nil).
// Returns ErrNilMatrix or ErrDimensionMismatch in that priority order.
// Complexity: O(1).
func ValidateBinarySameShape[T Numeric](a, b Matrix[T]) error {
	// Nil checks come first (documented error priority).
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	// Then shape equality.
	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → inner dimensions.
//
// Inputs: Left matrix a (r×n) and right matrix b (n'×c).
// Returns ErrDimensionMismatch unless a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[T Numeric](a, b Matrix[T]) error {
	// Nil checks first, inner-dimension agreement second.
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare – Ensures the matrix has equal row and column counts.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Returns ErrNonSquare when Rows() != Cols().
// Complexity: O(1).
func ValidateSquare[T Numeric](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Inputs: Matrix value (possibly nil).
// Returns ErrNilMatrix or ErrNonSquare in that priority order.
// Complexity: O(1).
func ValidateSquareNonNil[T Numeric](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateVecLen – Ensures a vector operand has exactly n elements.
//
// Inputs: vector x and the required length n.
// Returns ErrVecLength (wrapped with expected vs actual) on mismatch.
// Complexity: O(1).
func ValidateVecLen[T Numeric](x []T, n int) error {
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: want %d elements, got %d: %w", n, len(x), ErrVecLength)
	}

	return nil
}

// ValidateRowLens – Ensures a row list carries exactly rows rows of exactly
// cols values each. This check always runs at construction time: the values
// supplied at the call site are ordinary slices whose lengths cannot be
// proven statically.
//
// Inputs: target shape (rows, cols) and the candidate row slices.
// Returns ErrArityMismatch (wrapped with expected vs actual) on the first
// violation; no partial result is ever produced from invalid input.
// Complexity: O(rows).
func ValidateRowLens[T Numeric](rows, cols int, rowvals [][]T) error {
	// Row count first: a swapped-shape call fails here, loudly.
	if len(rowvals) != rows {
		return fmt.Errorf("ValidateRowLens: want %d rows, got %d: %w", rows, len(rowvals), ErrArityMismatch)
	}
	// Then every row length, in fixed order.
	for i := 0; i < rows; i++ {
		if len(rowvals[i]) != cols {
			return fmt.Errorf("ValidateRowLens: row %d: want %d values, got %d: %w",
				i, cols, len(rowvals[i]), ErrArityMismatch)
		}
	}

	return nil
}
