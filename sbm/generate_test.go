// Package sbm_test verifies the cross-variant contract of the generators:
// shape and symmetry, label consistency, guaranteed connectivity, and
// seed-for-seed determinism.
package sbm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sbmgen/matrix"
	"github.com/katalvlaran/sbmgen/sbm"
)

// generator abstracts one variant for the shared contract table.
type generator func() (*sbm.Instance, error)

func variantTable() []struct {
	name       string
	blockSizes []int
	run        generator
} {
	return []struct {
		name       string
		blockSizes []int
		run        generator
	}{
		{
			name:       "binary",
			blockSizes: []int{12, 11, 11},
			run: func() (*sbm.Instance, error) {
				return sbm.GenerateBinary(34, []int{12, 11, 11}, 0.3, 0.05, 4242)
			},
		},
		{
			name:       "signed",
			blockSizes: []int{17, 17},
			run: func() (*sbm.Instance, error) {
				return sbm.GenerateSigned(34, []int{17, 17}, 0.25, 0.2, 0.04, 4242)
			},
		},
		{
			name:       "weighted",
			blockSizes: []int{12, 11, 11},
			run: func() (*sbm.Instance, error) {
				return sbm.GenerateWeighted(34, []int{12, 11, 11}, 0.25, 0.05, 4.0, 1.0, 4242)
			},
		},
	}
}

func TestGenerators_SharedContract(t *testing.T) {
	t.Parallel()

	for _, tc := range variantTable() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			inst, err := tc.run()
			require.NoError(t, err)
			require.NotNil(t, inst.A)
			require.NotNil(t, inst.G)

			// Shape, symmetry, zero diagonal.
			require.Equal(t, 34, inst.A.Order())
			require.NoError(t, matrix.ValidateSymmetric(inst.A, matrix.EpsExact))
			require.NoError(t, matrix.ValidateZeroDiagonal(inst.A, matrix.EpsExact))

			// Label consistency: length n, per-block counts match sizes,
			// non-decreasing block ids.
			require.Len(t, inst.Labels, 34)
			counts := make(map[int]int)
			for i, lbl := range inst.Labels {
				counts[lbl]++
				if i > 0 {
					require.GreaterOrEqual(t, lbl, inst.Labels[i-1])
				}
			}
			for r, sz := range tc.blockSizes {
				require.Equal(t, sz, counts[r], "block %d size", r)
			}

			// Support view reflects the matrix and is connected.
			require.True(t, inst.G.IsConnected())
			for _, e := range inst.G.Edges() {
				require.NotZero(t, inst.A.At(e.U, e.V))
			}
		})
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	t.Parallel()

	for _, tc := range variantTable() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			first, err := tc.run()
			require.NoError(t, err)
			second, err := tc.run()
			require.NoError(t, err)

			eq, err := first.A.Equal(second.A)
			require.NoError(t, err)
			require.True(t, eq, "matrices must be bit-identical for equal seeds")
			require.Equal(t, first.Labels, second.Labels)
			require.Equal(t, first.G.Edges(), second.G.Edges())
		})
	}
}

func TestGenerators_ConfigurationError(t *testing.T) {
	t.Parallel()

	// sum(blockSizes) != n must fail before any sampling, for every variant.
	_, err := sbm.GenerateBinary(10, []int{3, 3}, 0.5, 0.1, 1)
	require.ErrorIs(t, err, sbm.ErrBlockSizes)

	_, err = sbm.GenerateSigned(10, []int{5, 6}, 0.5, 0.1, 0.1, 1)
	require.ErrorIs(t, err, sbm.ErrBlockSizes)

	_, err = sbm.GenerateWeighted(10, []int{}, 0.5, 0.1, 2, 1, 1)
	require.ErrorIs(t, err, sbm.ErrBlockSizes)

	_, err = sbm.GenerateBinary(0, nil, 0.5, 0.1, 1)
	require.ErrorIs(t, err, sbm.ErrTooFewNodes)
}

func TestGenerateBinary_RepairFromEmpty(t *testing.T) {
	t.Parallel()

	// p_in = p_out = 0: sampling yields an all-zero matrix (6 isolated
	// nodes); repair must connect them with exactly 5 bridges, none a loop.
	inst, err := sbm.GenerateBinary(6, []int{3, 3}, 0, 0, 777)
	require.NoError(t, err)

	require.True(t, inst.G.IsConnected())
	require.Equal(t, 5, inst.G.EdgeCount())
	require.NoError(t, matrix.ValidateZeroDiagonal(inst.A, matrix.EpsExact))
	for _, e := range inst.G.Edges() {
		require.NotEqual(t, e.U, e.V)
		require.Equal(t, 1.0, inst.A.At(e.U, e.V))
	}
}

func TestPresets_Generate(t *testing.T) {
	t.Parallel()

	binInst, err := sbm.DefaultBinaryParams().Generate()
	require.NoError(t, err)
	require.Equal(t, 100, binInst.A.Order())
	require.True(t, binInst.G.IsConnected())

	sgnInst, err := sbm.DefaultSignedParams().Generate()
	require.NoError(t, err)
	require.Equal(t, 100, sgnInst.A.Order())
	require.True(t, sgnInst.G.IsConnected())

	wgtInst, err := sbm.DefaultWeightedParams().Generate()
	require.NoError(t, err)
	require.Equal(t, 100, wgtInst.A.Order())
	require.True(t, wgtInst.G.IsConnected())
}
