// Package graph_test exercises the undirected support-graph view: edge
// surface, deterministic iteration order, and error sentinels.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sbmgen/graph"
)

func TestNew_Validate(t *testing.T) {
	t.Parallel()

	g, err := graph.New(0)
	require.Nil(t, g)
	require.ErrorIs(t, err, graph.ErrBadOrder)

	g, err = graph.New(1)
	require.NoError(t, err)
	require.Equal(t, 1, g.Order())
	require.Zero(t, g.EdgeCount())
}

func TestAddEdge_Sentinels(t *testing.T) {
	t.Parallel()

	g, err := graph.New(4)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 4), graph.ErrVertexRange)
	require.ErrorIs(t, g.AddEdge(-1, 2), graph.ErrVertexRange)
	require.ErrorIs(t, g.AddEdge(2, 2), graph.ErrSelfLoop)

	require.NoError(t, g.AddEdge(0, 1))
	require.Equal(t, 1, g.EdgeCount())

	// Duplicates collapse: simple graph, no error, no count change.
	require.NoError(t, g.AddEdge(1, 0))
	require.Equal(t, 1, g.EdgeCount())
}

func TestEdgeSurface_Deterministic(t *testing.T) {
	t.Parallel()

	g, err := graph.New(5)
	require.NoError(t, err)
	// Insert out of order on purpose; iteration must still ascend.
	for _, e := range [][2]int{{3, 1}, {0, 4}, {1, 0}, {2, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	require.True(t, g.HasEdge(1, 3))
	require.True(t, g.HasEdge(4, 0))
	require.False(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(0, 99))

	require.Equal(t, []int{1, 4}, g.Neighbors(0))
	require.Equal(t, []int{0, 3}, g.Neighbors(1))
	require.Nil(t, g.Neighbors(99))

	require.Equal(t, 2, g.Degree(0))
	require.Zero(t, g.Degree(99))

	want := []graph.Edge{{U: 0, V: 1}, {U: 0, V: 4}, {U: 1, V: 3}, {U: 2, V: 4}}
	require.Equal(t, want, g.Edges())
}
