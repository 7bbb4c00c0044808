// Package matrix provides a fixed-shape, row-major dense matrix value type
// generic over numeric element types.
//
// The matrix package provides:
//
//   - Dense[T], a flat row-major container whose shape is fixed at
//     construction and validated eagerly (element-pack and row-list
//     construction modes with strict arity checks).
//   - Bounds-checked element/row access plus zero-copy row slices and
//     column views (ColView) for write-through mutation without copies.
//   - Linear-algebra kernels (Mul, Transpose, Add, Sub, Hadamard, Scale,
//     MatVec) with *Dense fast paths and interface fallbacks.
//   - Discoverable builders (NewZeros, NewUniform, NewIdentity) and thin
//     facades (Sum, Diff, Product, Gram, ...) over the canonical kernels.
//
// All public entry points return sentinel errors (matched with errors.Is)
// instead of panicking; shapes are immutable for a value's lifetime and
// every constructed matrix holds exactly Rows*Cols initialized elements.
//
// See the examples in this package for usage patterns.
package matrix
