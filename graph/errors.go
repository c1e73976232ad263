// SPDX-License-Identifier: MIT
// Package graph: sentinel errors.
//
// Policy: sentinels only; callers branch with errors.Is. Mutators return
// these on invalid input instead of panicking.

package graph

import "errors"

// ErrBadOrder indicates a requested vertex count below the minimum (n < 1).
var ErrBadOrder = errors.New("graph: order must be >= 1")

// ErrVertexRange indicates an endpoint index outside [0, n).
var ErrVertexRange = errors.New("graph: vertex index out of range")

// ErrSelfLoop indicates an attempted u—u edge; the support graph is simple.
var ErrSelfLoop = errors.New("graph: self-loop not allowed")
