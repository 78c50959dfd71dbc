package named_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
	"github.com/gomatroid/cmr/named"
)

func TestIdentityMatrixRoundTrip(t *testing.T) {
	m, err := named.CreateIdentityMatrix(4)
	require.NoError(t, err)
	assert.Equal(t, 4, named.IsIdentityMatrix(m))
}

func TestIsIdentityMatrixRejectsNonIdentity(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 1}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	assert.Equal(t, 0, named.IsIdentityMatrix(m))
}

func TestIsIdentityMatrixRejectsNonSquare(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0, 0}, {0, 1, 0}}, matrix.Width8)
	require.NoError(t, err)
	assert.Equal(t, 0, named.IsIdentityMatrix(m))
}

func TestCreateR10MatrixShapes(t *testing.T) {
	m1, err := named.CreateR10Matrix(1)
	require.NoError(t, err)
	assert.Equal(t, 5, m1.Rows())
	assert.Equal(t, 5, m1.Cols())

	m2, err := named.CreateR10Matrix(2)
	require.NoError(t, err)
	assert.Equal(t, 5, m2.Rows())
	assert.Equal(t, 5, m2.Cols())

	_, err = named.CreateR10Matrix(3)
	assert.Error(t, err)
}

func TestIsR10MatrixRejectsWrongDimensions(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	idx, err := named.IsR10Matrix(env, m)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestIsR10MatrixRejectsWrongDegreeProfile(t *testing.T) {
	// A 5x5 identity has every row/column at degree 1, which matches
	// neither R10 representative's degree histogram.
	m, err := named.CreateIdentityMatrix(5)
	require.NoError(t, err)
	env := cmrenv.New()
	idx, err := named.IsR10Matrix(env, m)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestCreateR12MatrixShape(t *testing.T) {
	m, err := named.CreateR12Matrix(1)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Rows())
	assert.Equal(t, 6, m.Cols())

	_, err = named.CreateR12Matrix(2)
	assert.Error(t, err)
}

func TestIsR12MatrixNotImplemented(t *testing.T) {
	m, err := named.CreateR12Matrix(1)
	require.NoError(t, err)
	env := cmrenv.New()
	_, err = named.IsR12Matrix(env, m)
	assert.Error(t, err)
}

func TestCreateK5MatrixShapeAndRecognition(t *testing.T) {
	m, err := named.CreateK5Matrix(1)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 6, m.Cols())

	_, err = named.CreateK5Matrix(2)
	assert.Error(t, err)
}

func TestIsK5MatrixRejectsWrongDimensions(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	idx, err := named.IsK5Matrix(env, m)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestCreateK33MatrixShape(t *testing.T) {
	m, err := named.CreateK33Matrix(1)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 4, m.Cols())

	_, err = named.CreateK33Matrix(2)
	assert.Error(t, err)
}

func TestIsK33MatrixRejectsWrongDimensions(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	idx, err := named.IsK33Matrix(env, m)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestCreateF7MatrixShapeAndRecognition(t *testing.T) {
	m, err := named.CreateF7Matrix(1)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.True(t, named.IsF7Matrix(m))

	_, err = named.CreateF7Matrix(2)
	assert.Error(t, err)
}

func TestIsF7MatrixRejectsWrongDimensions(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	assert.False(t, named.IsF7Matrix(m))
}

func TestIsF7MatrixRejectsWrongDegreeProfile(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}, matrix.Width8)
	require.NoError(t, err)
	assert.False(t, named.IsF7Matrix(m))
}
