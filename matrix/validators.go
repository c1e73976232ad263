// SPDX-License-Identifier: MIT
// Package matrix: invariant validators.
//
// Validators express the two structural invariants every adjacency matrix in
// this module must satisfy after generation: symmetry and a zero diagonal.
// They return sentinels (ErrAsymmetry / ErrNonZeroDiagonal) wrapped with the
// first offending coordinate; callers branch with errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// EpsExact is the strict tolerance: values must match bitwise.
// All generators in this module emit exact integer-valued floats, so the
// default comparisons use EpsExact rather than a rounding allowance.
const EpsExact = 0.0

// ValidateSymmetric verifies |m[i][j] - m[j][i]| <= eps for all pairs.
// Returns ErrNilMatrix for a nil receiver and ErrAsymmetry (wrapped with the
// first violating pair) otherwise. Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if math.Abs(m.data[i*m.n+j]-m.data[j*m.n+i]) > eps {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					i, j, m.data[i*m.n+j], j, i, m.data[j*m.n+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal verifies |m[i][i]| <= eps for all i.
// Returns ErrNilMatrix for a nil receiver and ErrNonZeroDiagonal (wrapped
// with the first violating index) otherwise. Complexity: O(n).
func ValidateZeroDiagonal(m *Dense, eps float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	for i := 0; i < m.n; i++ {
		if math.Abs(m.data[i*m.n+i]) > eps {
			return fmt.Errorf("ValidateZeroDiagonal: (%d,%d)=%g: %w",
				i, i, m.data[i*m.n+i], ErrNonZeroDiagonal)
		}
	}

	return nil
}
