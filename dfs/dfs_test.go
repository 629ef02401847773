package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strukt/dfs"
	"github.com/katalvlaran/strukt/graph"
)

// chainAndBranch builds A→B→C plus A→D (directed), so the preorder from
// A is fully determined: A, B, C, D.
func chainAndBranch(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "D", 0))

	return g
}

func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrNilGraph)

	_, err = dfs.DFS(graph.New(), "A")
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestDFS_PreorderAndDepths(t *testing.T) {
	res, err := dfs.DFS(chainAndBranch(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, 1, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["C"])
	_, ok := res.Parent["A"]
	assert.False(t, ok, "start has no parent")
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(chainAndBranch(t), "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D"}, res.Order, "C lies beyond the depth limit")
}

func TestDFS_OnVisitAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := dfs.DFS(chainAndBranch(t), "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_CycleTerminates(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "A", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}
