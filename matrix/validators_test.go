// Package matrix_test contains unit tests for the canonical validators:
// sentinel identity, priority order, and wrapped expected-vs-actual context.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gemm/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateShape checks the positive-dimensions contract.
func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(1, 1))                               // smallest legal shape
	require.ErrorIs(t, matrix.ValidateShape(0, 1), matrix.ErrInvalidDimensions)  // zero rows
	require.ErrorIs(t, matrix.ValidateShape(1, 0), matrix.ErrInvalidDimensions)  // zero cols
	require.ErrorIs(t, matrix.ValidateShape(-2, 3), matrix.ErrInvalidDimensions) // negative rows
}

// TestValidateNotNil checks the nil-operand sentinel.
func TestValidateNotNil(t *testing.T) {
	m := mustRows(t, 1, 1, []int{1})
	require.NoError(t, matrix.ValidateNotNil[int](m))                       // non-nil passes
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix) // nil fails
}

// TestValidateBinarySameShape checks the documented error priority: nil before shape.
func TestValidateBinarySameShape(t *testing.T) {
	a := mustRows(t, 2, 2, []int{1, 2}, []int{3, 4})
	b := mustRows(t, 2, 3, []int{1, 2, 3}, []int{4, 5, 6})

	require.NoError(t, matrix.ValidateBinarySameShape[int](a, a)) // equal shapes pass

	err := matrix.ValidateBinarySameShape[int](nil, b) // nil wins over shape mismatch
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.ValidateBinarySameShape[int](a, b) // both non-nil: shape check applies
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible checks inner-dimension agreement.
func TestValidateMulCompatible(t *testing.T) {
	a := mustRows(t, 2, 3, []int{1, 2, 3}, []int{4, 5, 6})
	b := mustRows(t, 3, 1, []int{1}, []int{2}, []int{3})

	require.NoError(t, matrix.ValidateMulCompatible[int](a, b)) // 2x3 x 3x1 agrees

	err := matrix.ValidateMulCompatible[int](b, a) // 3x1 x 2x3 does not
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = matrix.ValidateMulCompatible[int](a, nil) // nil priority holds here too
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestValidateSquare checks the squareness requirement and its composite.
func TestValidateSquare(t *testing.T) {
	sq := mustRows(t, 2, 2, []int{1, 2}, []int{3, 4})
	rect := mustRows(t, 2, 3, []int{1, 2, 3}, []int{4, 5, 6})

	require.NoError(t, matrix.ValidateSquare[int](sq))
	require.ErrorIs(t, matrix.ValidateSquare[int](rect), matrix.ErrNonSquare)

	require.ErrorIs(t, matrix.ValidateSquareNonNil[int](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil[int](rect), matrix.ErrNonSquare)
}

// TestValidateVecLen checks length agreement with wrapped context.
func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]int{1, 2, 3}, 3)) // exact length passes

	err := matrix.ValidateVecLen([]int{1, 2}, 3) // short vector fails
	require.ErrorIs(t, err, matrix.ErrVecLength)
	require.Contains(t, err.Error(), "want 3 elements, got 2") // names expected vs actual
}

// TestValidateRowLens checks row-count and per-row length validation.
func TestValidateRowLens(t *testing.T) {
	good := [][]int{{1, 2}, {3, 4}, {5, 6}}
	require.NoError(t, matrix.ValidateRowLens(3, 2, good)) // exact shape passes

	err := matrix.ValidateRowLens(2, 2, good) // wrong row count fails first
	require.ErrorIs(t, err, matrix.ErrArityMismatch)
	require.Contains(t, err.Error(), "want 2 rows, got 3")

	bad := [][]int{{1, 2}, {3}}
	err = matrix.ValidateRowLens(2, 2, bad) // short row fails with its index
	require.ErrorIs(t, err, matrix.ErrArityMismatch)
	require.Contains(t, err.Error(), "row 1: want 2 values, got 1")
}
