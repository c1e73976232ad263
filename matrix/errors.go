// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never formatted at definition site; implementations may
//     attach context with %w wrapping at the boundary.
//   - Out-of-range indexing is NOT an error value: it is a programmer error
//     and panics (see doc.go indexing policy).

package matrix

import "errors"

// ErrBadShape is returned when a requested matrix shape is invalid
// (order n <= 0). Construction validates before allocation.
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrDimensionMismatch indicates incompatible orders between two operands,
// e.g. Equal or Add over matrices of different size.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrAsymmetry signals that a matrix expected to be symmetric violated
// symmetry within the configured epsilon.
var ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

// ErrNonZeroDiagonal signals that a diagonal required to be ~0 (within eps)
// carries a non-zero entry.
var ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

// ErrNilMatrix indicates that a nil *Dense receiver or argument was used
// where a concrete matrix is required.
var ErrNilMatrix = errors.New("matrix: nil receiver")
