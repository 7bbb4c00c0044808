// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including equality, matrix multiplication, transpose, element-wise
// addition/subtraction/product, scalar scaling, and matrix-vector product.
// All kernels perform strict fail-fast validation via the central validators
// and return clear sentinel errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared conventions for determinism and error reporting.
//
// Notes:
//   - Kernels fast-path on *Dense operands (flat-slice loops, zero-copy row
//     slices and column views) and fall back to the Matrix interface.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether a and b have the same shape and element-wise equal
// contents. Two nil matrices are equal; a nil and a non-nil are not.
// Shape is part of a value's identity, so differently shaped matrices are
// never equal — the check is made here because shapes are runtime facts.
//
// Implementation:
//   - Stage 1: nil handling, then shape comparison.
//   - Stage 2: *Dense×*Dense fast path — single flat walk via Dense.Equal.
//   - Stage 3: fallback — fixed i→j loops over At (in-bounds by construction).
//
// Determinism:
//   - Fixed traversal order; short-circuits on the first difference.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal[T Numeric](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil // equal only when both absent
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false // shape mismatch: never equal
	}

	// Fast path: both concrete Dense — compare flat buffers.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			return da.Equal(db)
		}
	}

	// Fallback: generic interface loops; indices are in bounds by the shape
	// check above, so At errors cannot occur.
	var i, j int
	var av, bv T
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// MAIN DESCRIPTION:
//   - Each output cell (i,j) is the dot product of row i of A and column j of
//     B, accumulated from the additive identity of the element type. The
//     result is a freshly allocated Dense distinct from both operands.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil checks, A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, consume B column-by-column through a
//     zero-copy ColView and A row-by-row through zero-copy Row slices:
//     fixed j→i→k order, no intermediate column buffer, zero-skip on A[i,k].
//   - Stage 3: otherwise fall back to fixed i→j→k loops over At/Set.
//
// Behavior highlights:
//   - Deterministic loop orders; one allocation for C; operands never mutated.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix[T]: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Keep both operands as *Dense to unlock the view-based fast path.
func Mul[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	// Validate inputs via canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		av, bv  T   // operand scalars
		acc     T   // dot-product accumulator
		zero    T   // additive identity of T
	)

	// Fast path for two Dense matrices: rows of A × column views of B.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var cv *ColView[T]
			var rowA []T
			for j = 0; j < bCols; j++ {
				cv, _ = db.ColView(j) // in bounds: j < bCols
				for i = 0; i < aRows; i++ {
					rowA, _ = da.Row(i) // in bounds: i < aRows
					acc = zero          // seed at the additive identity
					for k = 0; k < aCols; k++ {
						if rowA[k] == zero {
							continue // skip zero for performance
						}
						acc += rowA[k] * cv.at(k) // pairwise product, strided column read
					}
					res.data[i*bCols+j] = acc
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = zero
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == zero {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv // accumulate product
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result.
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// MAIN DESCRIPTION:
//   - Output row i equals input column i. The Dense fast path assembles each
//     output row directly from a zero-copy column view of the source, so no
//     scratch column buffer is ever allocated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, per output row j copy through ColView(j) into
//     the zero-copy destination row slice; else generic i→j At/Set loop.
//
// Behavior highlights:
//   - Deterministic copy order; one allocation for the result; input unchanged.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - Matrix[T]: newly allocated Dense(c×r) with mᵀ.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Avoid transposing repeatedly in tight loops; hoist and reuse the result.
func Transpose[T Numeric](m Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators

	// Fast path: Dense source — output row j is the source's column view j.
	if dm, ok := m.(*Dense[T]); ok {
		var cv *ColView[T]
		var dst []T
		for j = 0; j < cols; j++ {
			cv, _ = dm.ColView(j) // in bounds: j < cols
			dst, _ = res.Row(j)   // in bounds: j < res.r
			for i = 0; i < rows; i++ {
				dst[i] = cv.at(i) // column element becomes row element
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result.
	return res, nil
}

// addSub computes elementwise out = a ± b, selected by subtract.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and fast-path. A boolean selects the combiner because the sign trick is not
// expressible for unsigned element types.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense — single flat loop 0..n-1 per combiner.
//     Otherwise fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Numeric](a, b Matrix[T], subtract bool, opTag string) (Matrix[T], error) {
	// Validate operands via canonical composite validator.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: both Dense — single flat loop per combiner.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			n := len(res.data)
			if subtract {
				for i := 0; i < n; i++ {
					res.data[i] = da.data[i] - db.data[i]
				}
			} else {
				for i := 0; i < n; i++ {
					res.data[i] = da.data[i] + db.data[i]
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface loops with fixed i→j order.
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // in bounds by shape validation
			bv, _ = b.At(i, j)
			if subtract {
				_ = res.Set(i, j, av-bv)
			} else {
				_ = res.Set(i, j, av+bv)
			}
		}
	}

	return res, nil
}

// Add returns the element-wise sum a + b as a freshly allocated Dense.
// Complexity: O(r*c).
//
// AI-Hints: Prefer passing *Dense operands for the single flat-loop fast path.
func Add[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns the element-wise difference a − b as a freshly allocated Dense.
// Complexity: O(r*c).
func Sub[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, true, opSub) }

// Hadamard returns the element-wise product a ⊙ b as a freshly allocated Dense.
// Same validation and fast-path structure as Add/Sub.
// Complexity: O(r*c).
func Hadamard[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast path: both Dense — single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for i := 0; i < len(res.data); i++ {
				res.data[i] = da.data[i] * db.data[i]
			}
			return res, nil
		}
	}

	// Fallback: generic interface loops with fixed i→j order.
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // in bounds by shape validation
			bv, _ = b.At(i, j)
			_ = res.Set(i, j, av*bv)
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Fast path multiplies a *Dense backing slice in a single flat loop.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Numeric](m Matrix[T], alpha T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: Dense — single flat loop.
	if dm, ok := m.(*Dense[T]); ok {
		for i := 0; i < len(res.data); i++ {
			res.data[i] = alpha * dm.data[i]
		}
		return res, nil
	}

	// Fallback: generic interface loops.
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // in bounds by construction
			_ = res.Set(i, j, alpha*v)
		}
	}

	return res, nil
}

// MatVec computes y = m·x where x has exactly Cols elements.
// MAIN DESCRIPTION:
//   - Row-by-row dot products; the result vector is freshly allocated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), then ValidateVecLen(x, m.Cols()).
//   - Stage 2: Dense fast path over zero-copy row slices; else At loops.
//
// Errors:
//   - ErrNilMatrix, ErrVecLength.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T Numeric](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows) // zero-seeded accumulators

	var i, k int
	var zero T

	// Fast path: Dense — dot each zero-copy row slice against x.
	if dm, ok := m.(*Dense[T]); ok {
		var row []T
		for i = 0; i < rows; i++ {
			row, _ = dm.Row(i) // in bounds: i < rows
			for k = 0; k < cols; k++ {
				if row[k] == zero {
					continue // skip zero for performance
				}
				y[i] += row[k] * x[k]
			}
		}
		return y, nil
	}

	// Fallback: generic interface loops.
	var v T
	for i = 0; i < rows; i++ {
		for k = 0; k < cols; k++ {
			v, _ = m.At(i, k) // in bounds by construction
			y[i] += v * x[k]
		}
	}

	return y, nil
}
