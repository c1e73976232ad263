// SPDX-License-Identifier: MIT
// Package sbm: sentinel errors.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Generators wrap sentinels with method context via %w and never panic.
//   - No partial results: a generator either returns a fully repaired
//     Instance or an error before any matrix is built.

package sbm

import "errors"

// ErrBlockSizes indicates that the block-size sequence does not sum to the
// requested node count n. This is the single configuration error of the
// generator surface; it is raised before any sampling happens.
// Usage: if errors.Is(err, ErrBlockSizes) { /* fix partition */ }.
var ErrBlockSizes = errors.New("sbm: block sizes must sum to n")

// ErrTooFewNodes indicates a node count below the minimum (n < 1).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* fix n */ }.
var ErrTooFewNodes = errors.New("sbm: node count too small")
