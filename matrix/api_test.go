// Package matrix_test contains unit tests for the facade layer: builders
// with intention-revealing names and kernel aliases.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gemm/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewZerosEqualsDefault ensures NewZeros builds the same value as NewDense.
func TestNewZerosEqualsDefault(t *testing.T) {
	z, err := matrix.NewZeros[int](2, 3) // explicit, discoverable name
	require.NoError(t, err)
	d, err := matrix.NewDense[int](2, 3) // default construction
	require.NoError(t, err)

	require.True(t, matrix.Equal[int](z, d)) // both are the all-zero matrix

	_, err = matrix.NewZeros[int](0, 3) // shape contract is shared
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewUniform ensures the facade fills every slot with the given value.
func TestNewUniform(t *testing.T) {
	u, err := matrix.NewUniform(2, 2, 3.5)
	require.NoError(t, err)

	want := mustRows(t, 2, 2, []float64{3.5, 3.5}, []float64{3.5, 3.5})
	require.True(t, matrix.Equal[float64](want, u))
}

// TestNewIdentityDiagonal ensures ones on the diagonal and zeros elsewhere.
func TestNewIdentityDiagonal(t *testing.T) {
	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)

	want := mustRows(t, 3, 3, []int{1, 0, 0}, []int{0, 1, 0}, []int{0, 0, 1})
	require.True(t, matrix.Equal[int](want, id))

	_, err = matrix.NewIdentity[int](0) // degenerate dimension
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestZerosLikeIdentityLike ensures shape-derived builders follow their contracts.
func TestZerosLikeIdentityLike(t *testing.T) {
	m := mustRows(t, 2, 3, []int{1, 2, 3}, []int{4, 5, 6})

	z, err := matrix.ZerosLike[int](m) // same shape, all zero
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = matrix.IdentityLike[int](m)          // 2x3 model is not square
	require.ErrorIs(t, err, matrix.ErrNonSquare)  // expect ErrNonSquare

	sq := mustRows(t, 2, 2, []int{9, 9}, []int{9, 9})
	id, err := matrix.IdentityLike[int](sq) // square model: I_2
	require.NoError(t, err)
	want, err := matrix.NewIdentity[int](2)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](want, id))

	_, err = matrix.ZerosLike[int](nil) // nil model
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.IdentityLike[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAliasesDelegate ensures each alias produces the canonical kernel result.
func TestAliasesDelegate(t *testing.T) {
	a := mustRows(t, 2, 2, []int{1, 2}, []int{3, 4})
	b := mustRows(t, 2, 2, []int{5, 6}, []int{7, 8})

	sum, err := matrix.Sum[int](a, b) // alias of Add
	require.NoError(t, err)
	add, err := matrix.Add[int](a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](add, sum))

	diff, err := matrix.Diff[int](a, b) // alias of Sub
	require.NoError(t, err)
	sub, err := matrix.Sub[int](a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](sub, diff))

	prod, err := matrix.Product[int](a, b) // alias of Mul
	require.NoError(t, err)
	mul, err := matrix.Mul[int](a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](mul, prod))

	had, err := matrix.HadamardProd[int](a, b) // alias of Hadamard
	require.NoError(t, err)
	hadK, err := matrix.Hadamard[int](a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](hadK, had))

	sc, err := matrix.ScaleBy[int](a, 2) // alias of Scale
	require.NoError(t, err)
	scK, err := matrix.Scale[int](a, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](scK, sc))

	mv, err := matrix.MatVecMul[int](a, []int{1, 1}) // alias of MatVec
	require.NoError(t, err)
	mvK, err := matrix.MatVec[int](a, []int{1, 1})
	require.NoError(t, err)
	require.Equal(t, mvK, mv)
}

// TestCloneMatrixFacade ensures CloneMatrix delegates to the polymorphic Clone.
func TestCloneMatrixFacade(t *testing.T) {
	m := mustRows(t, 2, 2, []int{1, 2}, []int{3, 4})

	cp := matrix.CloneMatrix[int](m) // structural clone
	require.True(t, matrix.Equal[int](m, cp))

	_ = cp.Set(0, 0, 9)                       // diverge the clone
	require.False(t, matrix.Equal[int](m, cp)) // original is unaffected
}
