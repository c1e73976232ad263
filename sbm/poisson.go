// SPDX-License-Identifier: MIT
// Package sbm: Poisson weight draws.

package sbm

import (
	"math"
	"math/rand"
)

// poissonDraw samples a Poisson(lam) variate from rng using Knuth's
// exponential-product method: multiply uniforms until the running product
// drops to exp(-lam).
//
// Contract:
//   - lam <= 0 returns 0 (degenerate rate; the weighted sampler clamps
//     realized weights to 1 afterwards).
//   - Consumes a variable number of uniforms (lam+1 expected), all from the
//     caller's seeded rng, so draws stay on the single deterministic stream.
//
// Complexity: O(lam) expected time, O(1) space. Adequate for the small
// rates this package targets; not intended for lam large enough to
// underflow exp(-lam).
func poissonDraw(rng *rand.Rand, lam float64) int64 {
	if lam <= 0 {
		return 0
	}

	limit := math.Exp(-lam)
	var k int64
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
