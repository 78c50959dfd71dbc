package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/linalg"
)

func TestDeterminantOfIdentity(t *testing.T) {
	d, err := linalg.Determinant([][]int64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), d)
}

func TestDeterminantOfClassicNonTUTriangle(t *testing.T) {
	// Cofactor expansion: 1*(0*1-1*1) - 1*(1*1-1*0) + 0 = -1 - 1 = -2.
	d, err := linalg.Determinant([][]int64{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), d)
}

func TestDeterminantRejectsNonSquare(t *testing.T) {
	_, err := linalg.Determinant([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrNonSquare)
}

func TestDeterminantRejectsEmpty(t *testing.T) {
	_, err := linalg.Determinant(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrEmpty)
}

func TestElementaryDivisorsOfDiagonalMatrix(t *testing.T) {
	d, err := linalg.ElementaryDivisors([][]int64{
		{2, 0},
		{0, 4},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, d)
}

func TestElementaryDivisorsOfSingularMatrix(t *testing.T) {
	// rank 1: the single-entry gcd is 1, and the 2x2 minor is zero.
	d, err := linalg.ElementaryDivisors([][]int64{
		{1, 2},
		{2, 4},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0}, d)
}

func TestElementaryDivisorsOfIdentity(t *testing.T) {
	d, err := linalg.ElementaryDivisors([][]int64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 1}, d)
}

func TestElementaryDivisorsRejectsRaggedInput(t *testing.T) {
	_, err := linalg.ElementaryDivisors([][]int64{{1, 2}, {3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrNonSquare)
}
