package seriespar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
	"github.com/gomatroid/cmr/seriespar"
)

func TestReduceAllOnesIsSeriesParallel(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	env := cmrenv.New()
	res, err := seriespar.Reduce(context.Background(), env, m, seriespar.Binary)
	require.NoError(t, err)
	assert.True(t, res.IsSeriesParallel)
	assert.Empty(t, res.Core.Rows)
	assert.Empty(t, res.Core.Cols)
	assert.NotEmpty(t, res.Reductions)
}

func TestReduceWheelIsNotSeriesParallel(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	env := cmrenv.New()
	res, err := seriespar.Reduce(context.Background(), env, m, seriespar.Binary)
	require.NoError(t, err)
	assert.False(t, res.IsSeriesParallel)
	require.NotNil(t, res.Violator)
	assert.Equal(t, []int{0, 1, 2}, res.Violator.Rows)
	assert.Equal(t, []int{0, 1, 2}, res.Violator.Cols)
	assert.Empty(t, res.Reductions)
}

func TestReduceUnitAndParallelRows(t *testing.T) {
	// Row 0 is a unit row (single 1 in col 0); rows 1 and 2 are parallel.
	m, err := matrix.FromDense([][]int64{
		{1, 0, 0},
		{0, 1, 1},
		{0, 1, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	env := cmrenv.New()
	res, err := seriespar.Reduce(context.Background(), env, m, seriespar.Binary)
	require.NoError(t, err)
	assert.True(t, res.IsSeriesParallel)
	var kinds []seriespar.ReductionKind
	for _, r := range res.Reductions {
		kinds = append(kinds, r.Kind)
	}
	assert.Contains(t, kinds, seriespar.KindUnit)
	assert.Contains(t, kinds, seriespar.KindParallel)
}

func TestReduceTernaryAntiParallel(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{1, -1, 0},
		{-1, 1, 0},
		{0, 0, 1},
	}, matrix.Width8)
	require.NoError(t, err)

	env := cmrenv.New()
	res, err := seriespar.Reduce(context.Background(), env, m, seriespar.Ternary)
	require.NoError(t, err)
	assert.True(t, res.IsSeriesParallel)
	found := false
	for _, r := range res.Reductions {
		if r.Kind == seriespar.KindAntiParallel {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReduceRejectsWrongMode(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{2, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)
	env := cmrenv.New()
	_, err = seriespar.Reduce(context.Background(), env, m, seriespar.Binary)
	assert.ErrorIs(t, err, seriespar.ErrNotBinaryOrTernary)
}
