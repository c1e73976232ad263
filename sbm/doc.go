// SPDX-License-Identifier: MIT

// Package sbm generates synthetic stochastic-block-model networks with
// guaranteed connectivity.
//
// Three sibling generators share one pipeline:
//
//	label assignment → edge sampling → (signed: cleanup) → connectivity
//	repair → support-graph view → packaged Instance
//
//   - GenerateBinary: undirected 0/1 adjacency, one within/between-block
//     probability pair (Erdős–Rényi per block pair).
//   - GenerateSigned: edges in {-1, 0, +1}; within-block edges predominantly
//     positive, between-block predominantly negative with controlled leakage.
//     The result always carries at least one negative edge — a hard
//     invariant, injected deterministically if sampling produced none.
//   - GenerateWeighted: nonnegative integer weights from block-dependent
//     Poisson rates; a realized edge never carries weight 0.
//
// Connectivity repair: components of the support graph (cells with nonzero
// magnitude) are chained through one seeded-random representative each, so k
// components cost exactly k-1 bridging edges. Bridges are 1 for binary,
// max(existing, 1) for weighted, and forced positive for signed.
//
// Determinism: a single *rand.Rand seeded from the explicit seed parameter
// is threaded through sampling and repair; identical parameters (seed
// included) reproduce bit-identical matrices and labels. No global state,
// no concurrency — each call owns its arrays exclusively until return
// (distinct calls are safe to run in parallel).
//
// Validation is deliberately thin: only sum(blockSizes) == n is enforced
// (ErrBlockSizes). Probabilities and rates are trusted as supplied;
// out-of-range values merely saturate the Bernoulli trials.
//
// Scale: the samplers consider all O(n²) unordered pairs; the intended
// regime is n under ~1,000.
package sbm
