package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/element"
	"github.com/gomatroid/cmr/format"
	"github.com/gomatroid/cmr/matrix"
	"github.com/gomatroid/cmr/multigraph"
)

func TestParseDenseRoundTripsSpecExample(t *testing.T) {
	const in = "2 3\n1 0 1\n1 1 0\n"
	m, err := format.ParseDense(strings.NewReader(in), matrix.Width8)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 0, 1}, {1, 1, 0}}, m.Dense())

	var buf bytes.Buffer
	require.NoError(t, format.WriteDense(&buf, m))
	assert.Equal(t, in, buf.String())
}

func TestParseDenseSkipsCommentsAndBlankLines(t *testing.T) {
	const in = "# header comment\n2 2\n\n1 0\n0 1\n"
	m, err := format.ParseDense(strings.NewReader(in), matrix.Width8)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 0}, {0, 1}}, m.Dense())
}

func TestParseDenseRejectsFieldCountMismatch(t *testing.T) {
	const in = "2 2\n1 0 0\n0 1\n"
	_, err := format.ParseDense(strings.NewReader(in), matrix.Width8)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrBadFormat)
}

func TestWriteDenseWithZeroPlaceholder(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{1, 0}, {0, 1}}, matrix.Width8)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, format.WriteDense(&buf, m, format.WithZeroPlaceholder('.')))
	assert.Equal(t, "2 2\n1 .\n. 1\n", buf.String())
}

func TestParseSparseAcceptsUnsortedInput(t *testing.T) {
	const in = "2 2 2\n2 2 5\n1 1 3\n"
	m, err := format.ParseSparse(strings.NewReader(in), matrix.Width8)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{3, 0}, {0, 5}}, m.Dense())
}

func TestSparseRoundTripIsSortedRowMajor(t *testing.T) {
	m, err := matrix.FromDense([][]int64{{3, 0}, {0, 5}}, matrix.Width8)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, format.WriteSparse(&buf, m))
	assert.Equal(t, "2 2 2\n1 1 3\n2 2 5\n", buf.String())

	m2, err := format.ParseSparse(&buf, matrix.Width8)
	require.NoError(t, err)
	assert.Equal(t, m.Dense(), m2.Dense())
}

func TestEdgeLabelRoundTripsRowAndColumn(t *testing.T) {
	assert.Equal(t, "r1", format.EdgeLabel(element.Row(0)))
	assert.Equal(t, "c3", format.EdgeLabel(element.Column(2)))

	e, ok := format.ParseEdgeLabel("r1")
	require.True(t, ok)
	assert.Equal(t, element.Row(0), e)

	e, ok = format.ParseEdgeLabel("c3")
	require.True(t, ok)
	assert.Equal(t, element.Column(2), e)
}

func TestParseEdgeLabelRejectsUnrecognized(t *testing.T) {
	_, ok := format.ParseEdgeLabel("")
	assert.False(t, ok)

	_, ok = format.ParseEdgeLabel("x1")
	assert.False(t, ok)

	_, ok = format.ParseEdgeLabel("r0")
	assert.False(t, ok)
}

func TestWriteAndParseEdgeListRoundTrip(t *testing.T) {
	g := multigraph.New()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	e0, err := g.AddEdge(a, b)
	require.NoError(t, err)
	e1, err := g.AddEdge(b, c)
	require.NoError(t, err)
	e2, err := g.AddEdge(c, a)
	require.NoError(t, err)
	_ = e0

	rowEdge := map[int]int{0: e1}
	colEdge := map[int]int{0: e2}

	var buf bytes.Buffer
	require.NoError(t, format.WriteEdgeList(&buf, g, rowEdge, colEdge, nil))
	assert.Equal(t, "n0 n1\nn1 n2 r1\nn2 n0 c1\n", buf.String())

	g2, rowEdge2, colEdge2, err := format.ParseEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, g2.NodeCount())
	assert.Equal(t, 3, g2.EdgeCount())
	assert.Equal(t, map[int]int{0: 1}, rowEdge2)
	assert.Equal(t, map[int]int{0: 2}, colEdge2)
}

func TestParseEdgeListIgnoresUnknownLabels(t *testing.T) {
	const in = "x y zzz\n"
	g, rowEdge, colEdge, err := format.ParseEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Empty(t, rowEdge)
	assert.Empty(t, colEdge)
}
