// SPDX-License-Identifier: MIT
// Package sbm: weighted generator implementation.
//
// Model: edge presence as in the binary sampler (pIn/pOut by block
// membership); a realized edge draws an integer weight from Poisson(lamIn)
// within a block or Poisson(lamOut) between blocks. A drawn weight of 0 is
// clamped to 1 so that an edge is never present with weight 0 — the support
// graph and the positive-weight graph stay identical.
//
// Determinism: same stable pair order as the binary sampler; Poisson draws
// consume the same seeded stream as the presence trials.

package sbm

import (
	"math/rand"

	"github.com/katalvlaran/sbmgen/matrix"
)

// minEdgeWeight is the floor applied to a realized edge's weight.
const minEdgeWeight = 1.0

func generateWeighted(n int, blockSizes []int, pIn, pOut, lamIn, lamOut float64, seed int64) (*Instance, error) {
	labels, err := blockLabels(n, blockSizes)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	w, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j     int
		p, lam   float64
		cellWght float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p, lam = pOut, lamOut
			if labels[i] == labels[j] {
				p, lam = pIn, lamIn
			}
			if rng.Float64() < p {
				cellWght = float64(poissonDraw(rng, lam))
				if cellWght <= 0 {
					cellWght = minEdgeWeight // realized edges always carry positive weight
				}
				w.SetSym(i, j, cellWght)
			}
		}
	}
	w.ZeroDiag()

	ensureConnectedWeighted(w, rng)

	return &Instance{A: w, G: supportOf(w), Labels: labels}, nil
}
