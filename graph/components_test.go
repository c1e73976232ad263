// Package graph_test: connected-component sweep coverage.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sbmgen/graph"
)

func TestConnectedComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		edges     [][2]int
		wantComps [][]int
		connected bool
	}{
		{
			name:      "single vertex",
			n:         1,
			wantComps: [][]int{{0}},
			connected: true,
		},
		{
			name:      "edgeless is all singletons",
			n:         3,
			wantComps: [][]int{{0}, {1}, {2}},
			connected: false,
		},
		{
			name:      "path is one component",
			n:         4,
			edges:     [][2]int{{0, 1}, {1, 2}, {2, 3}},
			wantComps: [][]int{{0, 1, 2, 3}},
			connected: true,
		},
		{
			name:  "two islands and an isolate",
			n:     6,
			edges: [][2]int{{0, 2}, {2, 4}, {1, 5}},
			// First-seen-root order with BFS discovery order inside.
			wantComps: [][]int{{0, 2, 4}, {1, 5}, {3}},
			connected: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := graph.New(tc.n)
			require.NoError(t, err)
			for _, e := range tc.edges {
				require.NoError(t, g.AddEdge(e[0], e[1]))
			}

			require.Equal(t, tc.wantComps, g.ConnectedComponents())
			require.Equal(t, tc.connected, g.IsConnected())
		})
	}
}
