// Package sbm_test: weighted-variant specifics — every realized edge
// carries a strictly positive integer-valued weight.
package sbm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sbmgen/sbm"
)

func TestGenerateWeighted_PositiveIntegerWeights(t *testing.T) {
	t.Parallel()

	inst, err := sbm.GenerateWeighted(50, []int{17, 17, 16}, 0.25, 0.05, 4.0, 1.0, 2024)
	require.NoError(t, err)

	n := inst.A.Order()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := inst.A.At(i, j)
			require.GreaterOrEqual(t, v, 0.0, "cell (%d,%d) must be nonnegative", i, j)
			require.Equal(t, math.Trunc(v), v, "cell (%d,%d) must be integer-valued", i, j)
			if i != j && v == 0 {
				require.False(t, inst.G.HasEdge(i, j), "zero cell must not appear in the support")
			}
		}
	}

	// Support equals the positive-weight graph: every edge weight >= 1.
	for _, e := range inst.G.Edges() {
		require.GreaterOrEqual(t, inst.A.At(e.U, e.V), 1.0)
	}
}

func TestGenerateWeighted_ZeroRateClampsToOne(t *testing.T) {
	t.Parallel()

	// lam = 0 makes every Poisson draw 0; the clamp must lift each realized
	// edge to weight exactly 1.
	inst, err := sbm.GenerateWeighted(12, []int{6, 6}, 1, 1, 0, 0, 31)
	require.NoError(t, err)

	require.True(t, inst.G.IsConnected())
	require.Positive(t, inst.G.EdgeCount())
	for _, e := range inst.G.Edges() {
		require.Equal(t, 1.0, inst.A.At(e.U, e.V))
	}
}
