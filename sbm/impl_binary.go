// SPDX-License-Identifier: MIT
// Package sbm: binary generator implementation.
//
// Model: Erdős–Rényi per block pair. For every unordered pair {i,j} with
// i<j, one uniform draw is compared against pIn (same block) or pOut
// (different blocks); a hit writes 1 symmetrically. Diagonal stays 0 by
// construction, no self-loops, no multi-edges (the matrix model forbids
// both).
//
// Determinism: stable trial order (i asc, then j asc with j>i) plus the
// seeded rng fully determine the matrix; identical (n, blockSizes, pIn,
// pOut, seed) reproduce identical output bit for bit.

package sbm

import (
	"math/rand"

	"github.com/katalvlaran/sbmgen/matrix"
)

// presentEdge is the cell value of a realized binary edge.
const presentEdge = 1.0

func generateBinary(n int, blockSizes []int, pIn, pOut float64, seed int64) (*Instance, error) {
	// 1) Deterministic partition; the only validated configuration input.
	labels, err := blockLabels(n, blockSizes)
	if err != nil {
		return nil, err
	}

	// 2) Fresh seeded stream, local to this call.
	rng := rand.New(rand.NewSource(seed))

	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	// 3) One Bernoulli trial per unordered pair, threshold by block membership.
	var (
		i, j int
		p    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p = pOut
			if labels[i] == labels[j] {
				p = pIn
			}
			if rng.Float64() < p {
				a.SetSym(i, j, presentEdge)
			}
		}
	}
	a.ZeroDiag()

	// 4) Repair, then build the support view once.
	ensureConnectedBinary(a, rng)

	return &Instance{A: a, G: supportOf(a), Labels: labels}, nil
}
