// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Fix the shape at construction and validate every ingestion arity eagerly,
//     so no partially-initialized value is ever observable.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy row slices (Row) and column views (colview.go).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see algebra.go): operate on the flat data slice directly.
//   - Use Row(i) for zero-copy row access; mutations reflect in the matrix.
//   - Use NewFromElems/NewFromRows for literal-style construction with strict arity checks.
//
// Complexity quicksheet:
//   - NewDense/NewFromElems/NewFromRows: O(r*c); At/Set: O(1); Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxRowCopy = "RowCopy" // method tag used in error wrappers
	ctxElems   = "NewFromElems"
	ctxRowList = "NewFromRows"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Attaches method context and coordinates to a sentinel for diagnostics while
// preserving errors.Is matching via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix with a shape fixed at construction.
//   - r,c hold dimensions (rows, cols), immutable for the value's lifetime.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Numeric] struct {
	r, c int // row and column counts (always > 0 for constructed values)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil) // *Dense implements our public Matrix interface
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation; every element
//     starts at the additive identity of T (Go zero value).
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 via ValidateShape.
//   - Stage 2: allocate zero-filled buffer; make() zero-fills deterministically.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense[T]: newly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols); no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer this ctor for staging buffers; for literal values use
//     NewFromElems or NewFromRows.
func NewDense[T Numeric](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]T, rows*cols)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewFromElems creates an r×c matrix from an element pack.
// MAIN DESCRIPTION:
//   - Element-pack construction: exactly one value performs a uniform fill of
//     all rows*cols slots; exactly rows*cols values are taken in row-major
//     order {(0,0)…(0,c-1),(1,0)…}. Any other count is rejected before any
//     storage is allocated — passing 6 values to a 3×3 shape must fail loudly.
//
// Implementation:
//   - Stage 1: validate shape via ValidateShape.
//   - Stage 2: validate len(elems) ∈ {1, rows*cols}; else ErrArityMismatch
//     wrapped with expected vs actual counts.
//   - Stage 3: uniform fill (single flat loop) or row-major copy.
//
// Behavior highlights:
//   - Mutually exclusive with NewFromRows by design; no silent truncation or
//     zero-padding of short packs.
//   - The pack is copied; the caller's slice is never retained.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - elems: exactly 1 or exactly rows*cols values.
//
// Returns:
//   - *Dense[T] holding the supplied values.
//
// Errors:
//   - ErrInvalidDimensions, ErrArityMismatch.
//
// Determinism:
//   - Fixed flat copy order 0..rows*cols-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - For visually grouped literals prefer NewFromRows; it makes a swapped
//     shape immediately visible at the call site.
func NewFromElems[T Numeric](rows, cols int, elems ...T) (*Dense[T], error) {
	// Validate shape first (error priority: shape before arity).
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	n := rows * cols
	// Arity contract: exactly one value (uniform fill) or exactly n values.
	if len(elems) != 1 && len(elems) != n {
		return nil, fmt.Errorf("Dense.%s: want 1 or %d values, got %d: %w",
			ctxElems, n, len(elems), ErrArityMismatch)
	}

	m := &Dense[T]{r: rows, c: cols, data: make([]T, n)}
	if len(elems) == 1 {
		// Uniform fill: propagate the single value into every slot.
		v := elems[0]
		for i := 0; i < n; i++ { // fixed flat order
			m.data[i] = v
		}
		return m, nil
	}
	// Row-major copy of the full pack.
	copy(m.data, elems)

	return m, nil
}

// NewFromRows creates an r×c matrix from exactly rows row slices.
// MAIN DESCRIPTION:
//   - Row-list construction: the values are grouped per row at the call site
//     ({{1,2,3},{4,5,6}}), which makes a dimension swap visible immediately,
//     unlike one flat list of rows*cols values.
//
// Implementation:
//   - Stage 1: validate shape via ValidateShape.
//   - Stage 2: validate row count and every row length via ValidateRowLens —
//     slice lengths are runtime facts, so the check always runs eagerly.
//   - Stage 3: copy each row into the flat buffer at offset i*cols.
//
// Behavior highlights:
//   - Fails before allocation on any arity violation; no partial value escapes.
//   - Row slices are copied; the caller's backing arrays are never retained.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - rowvals: exactly rows slices, each of exactly cols values.
//
// Returns:
//   - *Dense[T] holding the supplied values in row-major order.
//
// Errors:
//   - ErrInvalidDimensions, ErrArityMismatch (wrapped with expected vs actual).
//
// Determinism:
//   - Fixed row order 0..rows-1; per-row contiguous copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Numeric](rows, cols int, rowvals ...[]T) (*Dense[T], error) {
	// Validate shape first, then full arity (count + each length).
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if err := ValidateRowLens(rows, cols, rowvals); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRowList, err)
	}

	m := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ { // fixed row order
		copy(m.data[i*cols:(i+1)*cols], rowvals[i]) // contiguous per-row copy
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Bounds-checks 0 ≤ row < m.r and 0 ≤ col < m.c, then returns row*m.c + col.
// Returns the plain sentinel; public methods wrap with coordinates and
// method context. Kept unexported to avoid accidental panics at the surface.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Returns:
//   - (value, nil) on success; (zero, ErrOutOfRange) on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element write; shape and all other cells are untouched.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns row i as a zero-copy subslice of the backing buffer.
// MAIN DESCRIPTION:
//   - Mutable row access without allocation: writes through the returned
//     slice mutate the matrix in place.
//
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: return data[i*c : (i+1)*c : (i+1)*c] (capacity-clipped so an
//     append can never bleed into the next row).
//
// Behavior highlights:
//   - Indexing the returned slice gets the runtime's native bounds check and
//     the compiler's constant-index diagnosis — the preferred hot path.
//   - The slice borrows from the matrix; it must not outlive it.
//
// Returns:
//   - ([]T, nil) on success; (nil, ErrOutOfRange) on invalid index.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - For an independent snapshot use RowCopy; for all rows at once use RowSlices.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	// Full slice expression: len == cap == c.
	return m.data[base : base+m.c : base+m.c], nil
}

// RowCopy returns an owned copy of row i.
// Same bounds contract as Row; the result is independent of the matrix.
// Complexity: O(c).
func (m *Dense[T]) RowCopy(i int) ([]T, error) {
	src, err := m.Row(i)
	if err != nil {
		return nil, denseErrorf(ctxRowCopy, i, 0, ErrOutOfRange)
	}
	dst := make([]T, m.c) // allocate independent storage
	copy(dst, src)        // detach from the backing buffer

	return dst, nil
}

// RowSlices returns all rows as zero-copy subslices in row order, suitable
// for simple forward iteration. Writes through any returned slice mutate the
// matrix; take Clone() first when an independent snapshot is needed.
// Complexity: O(r) slice headers; no element copies.
func (m *Dense[T]) RowSlices() [][]T {
	out := make([][]T, m.r)
	var i, base int
	for i = 0; i < m.r; i++ { // fixed row order
		base = i * m.c
		out[i] = m.data[base : base+m.c : base+m.c]
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape and data.
//
// Implementation:
//   - Stage 1: allocate new buffer len==r*c.
//   - Stage 2: copy data.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original; no aliasing
//     survives a clone.
//
// Returns:
//   - Matrix[T]: *Dense[T] implementing Matrix[T].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy elements

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether other has the same shape and identical elements.
// Different shapes compare unequal (shape is part of a value's identity).
// Fast path: single flat buffer walk; deterministic order.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false // shape mismatch: not comparable as equal values
	}
	for i := 0; i < len(m.data); i++ { // fixed flat order
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the callback; no allocations; deterministic order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with deterministic row-major order.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols.
//   - Stage 2: compute new value via f and write back.
//
// Behavior highlights:
//   - No extra allocations; the shape never changes.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Keep transforms pure; avoid capturing external mutable state.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			m.data[base+j] = f(i, j, m.data[base+j]) // write back new value
		}
	}
}

// String renders a human-readable row dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
