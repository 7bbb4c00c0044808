// SPDX-License-Identifier: MIT

// Package matrix - zero-copy column views over Dense storage.
//
// Purpose:
//   - Read or write one column of a Dense without allocating or copying a
//     buffer: a ColView is a base pointer plus a column index, nothing more.
//   - Serve as the enabling primitive for Transpose and Mul, which consume
//     columns of the right-hand operand without materializing them.
//
// Lifetime contract:
//   - A ColView borrows from its base matrix. It stays valid for the base's
//     whole lifetime (no defined operation relocates storage) but must not be
//     retained past it, and must not be used concurrently with mutation of
//     the same matrix from another goroutine — the ordinary shared-mutable
//     hazard, not arbitrated here.
package matrix

import "fmt"

const (
	ctxColView = "ColView" // ctor tag for Dense.ColView
	ctxGetCol  = "GetCol"  // method tag for Dense.GetCol
)

// ColView is a non-owning view of a single column of a Dense (shared storage).
// Not implementing Matrix on purpose: it is a 1D borrowed sequence, and
// accidental use as an independent matrix would hide the aliasing.
type ColView[T Numeric] struct {
	base *Dense[T] // underlying storage owner
	col  int       // viewed column index in base
}

// ColView returns a zero-copy view of column j.
// MAIN DESCRIPTION:
//   - O(1) construction of a borrowed column: one reference per row, no copy.
//
// Implementation:
//   - Stage 1: bounds-check 0 ≤ j < m.c.
//   - Stage 2: return ColView{base, j}.
//
// Behavior highlights:
//   - Writes via the view reflect in the base matrix immediately.
//
// Returns:
//   - *ColView[T] or ErrOutOfRange for an invalid column index.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use for column-consuming kernels; call GetCol when the column must have
//     independent lifetime.
func (m *Dense[T]) ColView(j int) (*ColView[T], error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxColView, j, ErrOutOfRange)
	}

	return &ColView[T]{base: m, col: j}, nil
}

// GetCol returns an owned copy of column j, one element per row.
// Same bounds contract as ColView; the result is independent of the matrix.
// Complexity: O(r).
func (m *Dense[T]) GetCol(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxGetCol, j, ErrOutOfRange)
	}
	out := make([]T, m.r)       // independent storage, one slot per row
	for i := 0; i < m.r; i++ {  // fixed row order
		out[i] = m.data[i*m.c+j] // strided read down the column
	}

	return out, nil
}

// Len returns the number of elements in the view (the base's row count).
// Complexity: O(1).
func (v *ColView[T]) Len() int { return v.base.r }

// Col returns the viewed column index in the base matrix.
// Complexity: O(1).
func (v *ColView[T]) Col() int { return v.col }

// At reads element i of the column or returns ErrOutOfRange.
// Translates to base coordinates (i, v.col); never panics.
// Complexity: O(1).
func (v *ColView[T]) At(i int) (T, error) {
	if i < 0 || i >= v.base.r {
		var zero T
		return zero, fmt.Errorf("ColView.At(%d): %w", i, ErrOutOfRange)
	}

	return v.base.data[i*v.base.c+v.col], nil
}

// Set writes element i of the column, mutating the base matrix in place.
// Complexity: O(1).
func (v *ColView[T]) Set(i int, val T) error {
	if i < 0 || i >= v.base.r {
		return fmt.Errorf("ColView.Set(%d): %w", i, ErrOutOfRange)
	}
	v.base.data[i*v.base.c+v.col] = val // write through shared storage

	return nil
}

// Materialize copies the viewed column into an owned slice.
// Equivalent to base.GetCol(v.Col()); provided for discoverability on the view.
// Complexity: O(r).
func (v *ColView[T]) Materialize() []T {
	out := make([]T, v.base.r)
	for i := 0; i < v.base.r; i++ { // fixed row order
		out[i] = v.base.data[i*v.base.c+v.col]
	}

	return out
}

// at is the unchecked read used by kernels after loop bounds are proven.
// Callers must guarantee 0 ≤ i < base.r.
func (v *ColView[T]) at(i int) T { return v.base.data[i*v.base.c+v.col] }
