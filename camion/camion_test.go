package camion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/camion"
	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
)

func TestCheckSignsAllOnesIsSigned(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 1}, {1, 1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	ok, violator, err := camion.CheckSigns(env, m)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, violator)
}

func TestCheckSignsDetectsViolation(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 1}, {1, -1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	ok, violator, err := camion.CheckSigns(env, m)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotNil(t, violator)
	assert.Equal(t, []int{0, 1}, violator.Rows)
	assert.Equal(t, []int{0, 1}, violator.Cols)
}

func TestComputeSignsPreservesAlreadySigned(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 1}, {1, 1}}, matrix.Width8)
	require.NoError(t, err)
	out, err := camion.ComputeSigns(m)
	require.NoError(t, err)
	assert.Equal(t, m.Dense(), out.Dense())
	env := cmrenv.New()
	ok, _, err := camion.CheckSigns(env, out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckSignsRejectsNonTernary(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{2, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	_, _, err = camion.CheckSigns(env, m)
	assert.ErrorIs(t, err, camion.ErrNotSigned)
}
