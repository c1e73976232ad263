// SPDX-License-Identifier: MIT
// Package sbm: signed generator implementation.
//
// Model: within a block, a positive edge appears with probability pPosIn.
// Between blocks, one uniform r decides a three-way split: r < pNegOut ⇒
// negative edge; r < pNegOut+pPosOut ⇒ positive leakage edge; otherwise no
// edge. The threshold sum is deliberately NOT validated against exceeding 1;
// that responsibility stays with the caller (see doc.go validation policy).
//
// Post-sampling pipeline:
//  1. Repair connectivity over the magnitude support (|A| > 0); any bridge
//     added purely for connectivity is forced positive — never negative — to
//     avoid spurious between-block negative signal.
//  2. Re-symmetrize A := (A+Aᵀ)/2 and re-zero the diagonal, guarding against
//     floating asymmetry from the repair step.
//  3. Enforce the negative-edge guarantee: if no strictly negative cell
//     survived, inject -1 between node 0 and node n-1 (or node n/2 when
//     those share a block). A hard invariant of the signed variant, not a
//     probabilistic outcome.

package sbm

import (
	"math/rand"

	"github.com/katalvlaran/sbmgen/matrix"
)

// Signed cell values.
const (
	positiveEdge = 1.0
	negativeEdge = -1.0
)

func generateSigned(n int, blockSizes []int, pPosIn, pNegOut, pPosOut float64, seed int64) (*Instance, error) {
	labels, err := blockLabels(n, blockSizes)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	// 1) Sample signs pair by pair (i asc, j > i asc — stable trial order).
	var (
		i, j int
		r    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if labels[i] == labels[j] {
				if rng.Float64() < pPosIn {
					a.SetSym(i, j, positiveEdge)
				}
				continue
			}
			// Between blocks: one draw, three outcomes.
			r = rng.Float64()
			switch {
			case r < pNegOut:
				a.SetSym(i, j, negativeEdge)
			case r < pNegOut+pPosOut:
				a.SetSym(i, j, positiveEdge)
			}
		}
	}
	a.ZeroDiag()

	// 2) Connectivity over the magnitude support; bridges forced positive.
	for _, pr := range bridgePairs(supportOf(a), rng) {
		a.SetSym(pr[0], pr[1], positiveEdge)
	}
	a.Symmetrize()
	a.ZeroDiag()

	// 3) Negative-edge guarantee.
	if !hasNegativeCell(a) {
		i, j = 0, n-1
		if labels[i] == labels[j] {
			j = n / 2
		}
		if i != j { // n=1 has no admissible off-diagonal cell
			a.SetSym(i, j, negativeEdge)
		}
	}

	return &Instance{A: a, G: supportOf(a), Labels: labels}, nil
}

// hasNegativeCell reports whether a carries any strictly negative entry.
// Symmetry lets the scan stay in the upper triangle. Complexity: O(n²).
func hasNegativeCell(a *matrix.Dense) bool {
	n := a.Order()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a.At(i, j) < 0 {
				return true
			}
		}
	}

	return false
}
