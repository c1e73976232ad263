// SPDX-License-Identifier: MIT
// Package sbm: public entry points.
//
// api.go - thin public surface for the generator package.
//
// Design contract (strict):
//   - Three entry points, one per edge-semantics variant; implemented in
//     impl_*.go (single place to read docs).
//   - Each is a pure function of its explicit parameters: no ambient state,
//     no global rng, no partial results.
//   - Determinism: identical parameters (seed included) ⇒ bit-identical
//     Instance (matrix, labels, and support view alike).
//   - Safety: never panic; return sentinel errors (ErrBlockSizes,
//     ErrTooFewNodes) wrapped with method context.

package sbm

import "fmt"

// GenerateBinary samples an undirected 0/1 SBM instance: within-block edges
// with probability pIn, between-block edges with probability pOut, then
// repairs connectivity (bridging cells set to 1).
//
// Errors: ErrTooFewNodes (n < 1), ErrBlockSizes (sizes don't sum to n).
// Probabilities are trusted as supplied. Complexity: O(n²).
func GenerateBinary(n int, blockSizes []int, pIn, pOut float64, seed int64) (*Instance, error) {
	inst, err := generateBinary(n, blockSizes, pIn, pOut, seed)
	if err != nil {
		return nil, fmt.Errorf("GenerateBinary: %w", err)
	}

	return inst, nil
}

// GenerateSigned samples a signed SBM instance with cells in {-1, 0, +1}:
// within-block edges positive with probability pPosIn; between-block edges
// negative with probability pNegOut or positive (leakage) with probability
// pPosOut. Connectivity bridges are forced positive, the matrix is
// re-symmetrized, and at least one negative edge is guaranteed
// unconditionally (deterministic injection when sampling produced none).
//
// The sum pNegOut+pPosOut is not validated; see doc.go. Complexity: O(n²).
func GenerateSigned(n int, blockSizes []int, pPosIn, pNegOut, pPosOut float64, seed int64) (*Instance, error) {
	inst, err := generateSigned(n, blockSizes, pPosIn, pNegOut, pPosOut, seed)
	if err != nil {
		return nil, fmt.Errorf("GenerateSigned: %w", err)
	}

	return inst, nil
}

// GenerateWeighted samples a nonnegative integer-weighted SBM instance:
// edge presence as in GenerateBinary, weights from Poisson(lamIn) within a
// block and Poisson(lamOut) between blocks, zero draws clamped to 1.
// Connectivity bridges are written as max(existing, 1).
//
// Errors and validation policy match GenerateBinary. Complexity: O(n²) pair
// trials plus O(lam) expected per realized edge.
func GenerateWeighted(n int, blockSizes []int, pIn, pOut, lamIn, lamOut float64, seed int64) (*Instance, error) {
	inst, err := generateWeighted(n, blockSizes, pIn, pOut, lamIn, lamOut, seed)
	if err != nil {
		return nil, fmt.Errorf("GenerateWeighted: %w", err)
	}

	return inst, nil
}
