package property_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
	"github.com/gomatroid/cmr/named"
	"github.com/gomatroid/cmr/property"
)

func TestTestTUAcceptsIdentity(t *testing.T) {
	m, err := named.CreateIdentityMatrix(3)
	require.NoError(t, err)

	ok, violator, err := property.TestTU(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, violator)
}

func TestTestTURejectsClassicNonTUTriangle(t *testing.T) {
	// det([[1,1,0],[1,0,1],[0,1,1]]) = -2, so this matrix cannot be TU:
	// its own determinant already violates the |det| <= 1 requirement.
	m, err := matrix.FromDense([][]int64{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	ok, violator, err := property.TestTU(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotNil(t, violator)
}

func TestTestTURejectsNonTernaryInput(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{2}}, matrix.Width8)
	require.NoError(t, err)

	_, _, err = property.TestTU(context.Background(), cmrenv.New(), m)
	require.Error(t, err)
	assert.ErrorIs(t, err, property.ErrNotTernary)
}

func TestComplementTUAcceptsAllZeroMatrix(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{0}}, matrix.Width8)
	require.NoError(t, err)

	isCTU, _, _, err := property.ComplementTU(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.True(t, isCTU)
}

func TestComplementTURejectsMatrixThatIsAlreadyNonTU(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	isCTU, _, _, err := property.ComplementTU(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.False(t, isCTU)
}

func TestRegularAcceptsIdentity(t *testing.T) {
	m, err := named.CreateIdentityMatrix(4)
	require.NoError(t, err)

	regular, root, err := property.TestRegular(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.True(t, regular)
	require.NoError(t, root.Consistency())
}

func TestIsUnimodularAcceptsIdentity(t *testing.T) {
	m, err := named.CreateIdentityMatrix(3)
	require.NoError(t, err)

	ok, err := property.IsUnimodular(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestModulusOfScaledSingleEntryMatrix(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{2}}, matrix.Width8)
	require.NoError(t, err)

	k, err := property.Modulus(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, int64(2), k)

	ok, err := property.IsKModular(context.Background(), cmrenv.New(), m, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = property.IsUnimodular(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsEquimodularDiscoversK(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{3}}, matrix.Width8)
	require.NoError(t, err)

	ok, k, err := property.IsEquimodular(context.Background(), cmrenv.New(), m, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), k)
}

func TestGhouilaHouriAgreesWithTestTUOnIdentity(t *testing.T) {
	m, err := named.CreateIdentityMatrix(3)
	require.NoError(t, err)

	ok, err := property.GhouilaHouriCheck(m)
	require.NoError(t, err)
	assert.True(t, ok)

	tu, _, err := property.TestTU(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, tu, ok)
}

func TestGhouilaHouriAgreesWithTestTUOnNonTUTriangle(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	ok, err := property.GhouilaHouriCheck(m)
	require.NoError(t, err)
	assert.False(t, ok)

	tu, _, err := property.TestTU(context.Background(), cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, tu, ok)
}

func TestBalancedCheckAgreesWithCamionOnIdentity(t *testing.T) {
	m, err := named.CreateIdentityMatrix(3)
	require.NoError(t, err)

	ok, violator, err := property.BalancedCheck(cmrenv.New(), m)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, violator)
}

func TestNamedMatchRecognizesIdentity(t *testing.T) {
	m, err := named.CreateIdentityMatrix(5)
	require.NoError(t, err)

	kind, idx, err := property.NamedMatch(cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, "I", kind)
	assert.Equal(t, 5, idx)
}

func TestNamedMatchRecognizesSignedR10(t *testing.T) {
	m, err := named.CreateR10Matrix(2)
	require.NoError(t, err)

	kind, idx, err := property.NamedMatch(cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, "R10", kind)
	assert.Equal(t, 2, idx)
}

func TestNamedMatchRecognizesF7(t *testing.T) {
	m, err := named.CreateF7Matrix(1)
	require.NoError(t, err)

	kind, idx, err := property.NamedMatch(cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, "F7", kind)
	assert.Equal(t, 1, idx)
}

func TestNamedMatchRecognizesF7Star(t *testing.T) {
	m, err := named.CreateF7Matrix(1)
	require.NoError(t, err)
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)

	kind, idx, err := property.NamedMatch(cmrenv.New(), mt)
	require.NoError(t, err)
	assert.Equal(t, "F7*", kind)
	assert.Equal(t, 1, idx)
}

func TestNamedMatchReturnsEmptyForNoMatch(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0}, {0, 1}, {1, 1}}, matrix.Width8)
	require.NoError(t, err)

	kind, idx, err := property.NamedMatch(cmrenv.New(), m)
	require.NoError(t, err)
	assert.Equal(t, "", kind)
	assert.Equal(t, 0, idx)
}
