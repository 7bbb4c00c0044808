// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops, views).
//   - Use NewIdentity/NewZeros/NewUniform to build matrices with explicit shape
//     and neutral or uniform elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name: every
// element starts at the additive identity of T.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense[T], error) to surface ErrInvalidDimensions.
func NewZeros[T Numeric](rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense[T](rows, cols)
}

// NewUniform returns a rows×cols matrix with every element set to v.
// Thin alias of the single-value element-pack construction mode.
// Complexity: O(r*c).
func NewUniform[T Numeric](rows, cols int, v T) (*Dense[T], error) {
	// One-value pack means uniform fill by contract.
	return NewFromElems(rows, cols, v)
}

// NewIdentity returns I_n (n×n identity; multiplicative identity on the
// diagonal, additive identity elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the multiplicative unit: Mul(I, A) == A == Mul(A, I).
func NewIdentity[T Numeric](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense[T](n, n) // surfaces ErrInvalidDimensions for n <= 0
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	one := T(1)              // multiplicative identity of the element type
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, one) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix[T Numeric](m Matrix[T]) Matrix[T] {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike[T Numeric](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	// Read shape once and call NewDense with the same dimensions.
	return NewDense[T](m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike[T Numeric](m Matrix[T]) (*Dense[T], error) {
	// Ensure the input is non-nil and square using the composite validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity[T](m.Rows()) // returns (*Dense[T], error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to unlock the view-based fast path.
func Product[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Hadamard(a, b) }

// ScaleBy is an alias for Scale: alpha*m.
// Complexity: O(rc).
func ScaleBy[T Numeric](m Matrix[T], alpha T) (Matrix[T], error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
func MatVecMul[T Numeric](m Matrix[T], x []T) ([]T, error) { return MatVec(m, x) }

// Gram returns the Gram matrix m·mᵀ of shape Rows(m)×Rows(m).
// Composes Transpose and Mul; always symmetric for real element types.
// Complexity: O(r*c) for the transpose + O(r*c*r) for the product.
func Gram[T Numeric](m Matrix[T]) (Matrix[T], error) {
	// Transpose first; its validation covers the nil case.
	mt, err := Transpose(m)
	if err != nil {
		return nil, err // already wrapped with the Transpose tag
	}

	// Inner dimensions agree by construction (c × r against r rows).
	return Mul(m, mt)
}
