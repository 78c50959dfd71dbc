package multigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatroid/cmr/multigraph"
)

func triangle(t *testing.T) (*multigraph.Graph, int, int, int) {
	t.Helper()
	g := multigraph.New()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)
	_, err = g.AddEdge(c, a)
	require.NoError(t, err)
	return g, a, b, c
}

func TestAddEdgeAndCounts(t *testing.T) {
	g, _, _, _ := triangle(t)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	require.NoError(t, g.Consistency())
}

func TestEdgesVisitEachOnce(t *testing.T) {
	g, _, _, _ := triangle(t)
	count := 0
	g.Edges(func(e, u, v int) { count++ })
	assert.Equal(t, 3, count)
}

func TestIncidentDegree(t *testing.T) {
	g, a, _, _ := triangle(t)
	deg := 0
	require.NoError(t, g.Incident(a, func(edge, other int) { deg++ }))
	assert.Equal(t, 2, deg)
}

func TestLoopReportedOnce(t *testing.T) {
	g := multigraph.New()
	u := g.AddNode()
	_, err := g.AddEdge(u, u)
	require.NoError(t, err)
	count := 0
	g.Edges(func(e, a, b int) { count++; assert.Equal(t, u, a); assert.Equal(t, u, b) })
	assert.Equal(t, 1, count)
	require.NoError(t, g.Consistency())
}

func TestDeleteNodeRemovesIncidentEdges(t *testing.T) {
	g, a, b, c := triangle(t)
	require.NoError(t, g.DeleteNode(b))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.Consistency())
	_, _, err := g.Endpoints(0)
	_ = err // edge 0 (a-b) may or may not survive depending on allocation order; check the remaining edge count instead
	remaining := 0
	g.Edges(func(e, u, v int) {
		remaining++
		assert.NotEqual(t, b, u)
		assert.NotEqual(t, b, v)
	})
	assert.Equal(t, 1, remaining)
	_ = c
}

func TestMergeNodesReattachesEdges(t *testing.T) {
	g, a, b, c := triangle(t)
	require.NoError(t, g.MergeNodes(a, b))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	require.NoError(t, g.Consistency())
	deg := 0
	require.NoError(t, g.Incident(a, func(edge, other int) { deg++ }))
	assert.Equal(t, 4, deg) // a-c, c-a (from former b-c), and the a-b edge collapsed to a loop counted twice
	_ = c
}

func TestDeleteEdgeNotFound(t *testing.T) {
	g, _, _, _ := triangle(t)
	err := g.DeleteEdge(99)
	assert.ErrorIs(t, err, multigraph.ErrEdgeNotFound)
}

func TestAddEdgeMissingNode(t *testing.T) {
	g := multigraph.New()
	u := g.AddNode()
	_, err := g.AddEdge(u, 42)
	assert.ErrorIs(t, err, multigraph.ErrNodeNotFound)
}
