// SPDX-License-Identifier: MIT
// Package sbm: output bundle type.

package sbm

import (
	"github.com/katalvlaran/sbmgen/graph"
	"github.com/katalvlaran/sbmgen/matrix"
)

// Instance is the output bundle of one generation call.
//
// All three fields are created together at the end of the call and returned
// as an immutable-by-convention unit:
//
//   - A is the n×n adjacency/weight matrix: symmetric, zero diagonal,
//     connectivity-repaired. Cell semantics depend on the generator
//     (0/1, {-1,0,+1}, or nonnegative integer-valued weights).
//   - G is the support-graph view: an edge u—v exists iff |A[u][v]| > 0.
//     G is a read-derived projection of A built once after all repairs;
//     mutating A afterwards invalidates G.
//   - Labels is the ground-truth block assignment (length n, non-decreasing
//     block ids). Used only for downstream evaluation; the generator itself
//     never reads it back after sampling.
type Instance struct {
	A      *matrix.Dense
	G      *graph.Graph
	Labels []int
}
