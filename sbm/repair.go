// SPDX-License-Identifier: MIT
// Package sbm: connectivity repair.
//
// Responsibility: given a sampled matrix whose support graph may be
// disconnected, add a minimal bridging edge set that merges all components
// into one, disturbing the intended block signal as little as possible.
//
// Algorithm (shared by all variants):
//  1. Project the support graph (cells with nonzero magnitude).
//  2. Compute connected components; one component ⇒ no-op (the common case
//     for a reasonably dense block model).
//  3. Pick one representative per component with a seeded-random draw
//     (rng.Intn over the component's members — NOT the lowest index; the
//     draw order is part of the reproducibility contract).
//  4. Chain representatives in component order: rep[0]—rep[1], rep[1]—rep[2],
//     …  k components cost exactly k-1 bridges. A chain, not a star: overall
//     connectivity is guaranteed, a diameter bound is not.
//
// Cell policies differ per variant: binary writes 1, weighted writes
// max(existing, 1) (no-downgrade), signed forces bridges positive in
// impl_signed.go. Both typed repairers re-zero the diagonal after mutation.

package sbm

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sbmgen/graph"
	"github.com/katalvlaran/sbmgen/matrix"
)

// bridgeWeight is the cell value written for a bridging edge.
const bridgeWeight = 1.0

// supportOf projects the unweighted support graph of a: an edge u—v exists
// iff |a[u][v]| > 0, u < v. The same projection serves binary/weighted
// (nonnegative cells) and signed (magnitude) matrices.
// Complexity: O(n²).
func supportOf(a *matrix.Dense) *graph.Graph {
	n := a.Order()
	g, err := graph.New(n)
	if err != nil {
		// a was constructed with order >= 1, so graph.New cannot reject n.
		panic(err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a.At(i, j)) > 0 {
				// Endpoints are in range and i < j: AddEdge cannot fail.
				_ = g.AddEdge(i, j)
			}
		}
	}

	return g
}

// bridgePairs computes the bridging edges that connect sup into a single
// component. Returns nil when sup is already connected (including the
// single-vertex case). Otherwise returns exactly k-1 pairs for k components,
// each endpoint a seeded-random representative of its component.
// Complexity: O(V + E) for the component sweep plus O(k) draws.
func bridgePairs(sup *graph.Graph, rng *rand.Rand) [][2]int {
	comps := sup.ConnectedComponents()
	if len(comps) <= 1 {
		return nil
	}

	// One randomized representative per component, drawn in component order
	// so the rng stream stays aligned across runs.
	reps := make([]int, len(comps))
	for c, members := range comps {
		reps[c] = members[rng.Intn(len(members))]
	}

	// Spanning chain over components: rep[c] — rep[c+1].
	pairs := make([][2]int, 0, len(reps)-1)
	for c := 0; c+1 < len(reps); c++ {
		pairs = append(pairs, [2]int{reps[c], reps[c+1]})
	}

	return pairs
}

// ensureConnectedBinary repairs a 0/1 adjacency matrix in place, writing 1
// into each bridging cell pair. No-op when the support is connected.
func ensureConnectedBinary(a *matrix.Dense, rng *rand.Rand) {
	pairs := bridgePairs(supportOf(a), rng)
	if pairs == nil {
		return
	}
	for _, pr := range pairs {
		a.SetSym(pr[0], pr[1], bridgeWeight)
	}
	a.ZeroDiag()
}

// ensureConnectedWeighted repairs a weight matrix in place, writing
// max(existing, 1) into each bridging cell pair — a no-downgrade policy: a
// technically present near-zero weight is never reduced. No-op when the
// support is connected.
func ensureConnectedWeighted(w *matrix.Dense, rng *rand.Rand) {
	pairs := bridgePairs(supportOf(w), rng)
	if pairs == nil {
		return
	}
	for _, pr := range pairs {
		w.SetSym(pr[0], pr[1], math.Max(w.At(pr[0], pr[1]), bridgeWeight))
	}
	w.ZeroDiag()
}
