package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strukt/graph"
)

func TestGraph_VerticesSortedAndDeduped(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddEdge("c", "a", 0))

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasVertex("c"))
	assert.False(t, g.HasVertex("z"))
}

func TestGraph_EmptyIDRejected(t *testing.T) {
	g := graph.New()
	assert.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("", "a", 0), graph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("a", "", 0), graph.ErrEmptyVertexID)
}

func TestGraph_UnweightedRejectsWeights(t *testing.T) {
	g := graph.New()
	assert.ErrorIs(t, g.AddEdge("a", "b", 3), graph.ErrBadWeight)
	require.NoError(t, g.AddEdge("a", "b", 0))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_UndirectedMirrorsEdges(t *testing.T) {
	g := graph.New(graph.WithWeighted())
	require.NoError(t, g.AddEdge("a", "b", 4))

	ab, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, ab, 1)
	assert.Equal(t, graph.Edge{From: "a", To: "b", Weight: 4}, ab[0])

	ba, err := g.Neighbors("b")
	require.NoError(t, err)
	require.Len(t, ba, 1)
	assert.Equal(t, graph.Edge{From: "b", To: "a", Weight: 4}, ba[0])

	// The mirror is not double-counted.
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.Edges(), 1)
}

func TestGraph_DirectedDoesNotMirror(t *testing.T) {
	g := graph.New(graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, g.AddEdge("a", "b", 4))

	ab, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Len(t, ab, 1)

	ba, err := g.Neighbors("b")
	require.NoError(t, err)
	assert.Empty(t, ba)
}

func TestGraph_NeighborsOfMissingVertex(t *testing.T) {
	g := graph.New()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestGraph_SelfLoopNotMirrored(t *testing.T) {
	g := graph.New(graph.WithWeighted())
	require.NoError(t, g.AddEdge("a", "a", 2))

	aa, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Len(t, aa, 1, "self-loop must appear once, not twice")
}

func TestGraph_WeightPicksCheapestParallelEdge(t *testing.T) {
	g := graph.New(graph.WithWeighted())
	require.NoError(t, g.AddEdge("a", "b", 7))
	require.NoError(t, g.AddEdge("a", "b", 3))

	w, ok := g.Weight("a", "b")
	require.True(t, ok)
	assert.EqualValues(t, 3, w)

	// Mirrored lookup works on undirected graphs.
	w, ok = g.Weight("b", "a")
	require.True(t, ok)
	assert.EqualValues(t, 3, w)

	_, ok = g.Weight("a", "z")
	assert.False(t, ok)
}
