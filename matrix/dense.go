// SPDX-License-Identifier: MIT
// Package matrix: Dense — square row-major float64 matrix.
//
// Contract:
//   - NewSquare(n) with n >= 1; otherwise ErrBadShape.
//   - At/Set/SetSym are unchecked O(1) accessors (hot path; see doc.go).
//   - All mutators operate in place; Clone produces an independent copy.
//
// Complexity: construction/Clone/Symmetrize/Equal are O(n²); accessors O(1).

package matrix

import (
	"fmt"
	"strings"
)

// minOrder is the smallest admissible square order.
const minOrder = 1

// Dense is a square row-major matrix of float64 values.
// n is the order; data holds n*n elements in row-major layout.
type Dense struct {
	n    int       // order (rows == cols)
	data []float64 // flat backing storage, length n*n
}

// NewSquare creates an n×n Dense matrix initialized to zeros.
// Returns ErrBadShape when n < 1.
func NewSquare(n int) (*Dense, error) {
	if n < minOrder {
		return nil, fmt.Errorf("NewSquare: n=%d < min=%d: %w", n, minOrder, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Order returns the matrix order n.
func (m *Dense) Order() int {
	return m.n
}

// At retrieves the element at (i, j). Unchecked; see doc.go indexing policy.
func (m *Dense) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set assigns v at (i, j). Unchecked; see doc.go indexing policy.
func (m *Dense) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// SetSym assigns v at both (i, j) and (j, i), preserving symmetry by
// construction. The single write path used by all edge samplers.
func (m *Dense) SetSym(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// ZeroDiag forces every diagonal entry to exactly 0.
// Idempotent; O(n).
func (m *Dense) ZeroDiag() {
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = 0
	}
}

// Symmetrize replaces the matrix with (A + Aᵀ)/2 in place.
// A no-op on an already symmetric matrix (up to float rounding); O(n²).
func (m *Dense) Symmetrize() {
	var i, j int
	var avg float64
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			avg = (m.data[i*m.n+j] + m.data[j*m.n+i]) / 2
			m.data[i*m.n+j] = avg
			m.data[j*m.n+i] = avg
		}
	}
}

// Clone returns a deep copy of the matrix, independent of the original.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports exact element-wise equality with other.
// Returns ErrNilMatrix for nil operands and ErrDimensionMismatch when
// orders differ; bitwise comparison otherwise (determinism checks rely on
// exact equality, not epsilon closeness).
func (m *Dense) Equal(other *Dense) (bool, error) {
	if m == nil || other == nil {
		return false, ErrNilMatrix
	}
	if m.n != other.n {
		return false, fmt.Errorf("Equal: order %d vs %d: %w", m.n, other.n, ErrDimensionMismatch)
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false, nil
		}
	}

	return true, nil
}

// String implements fmt.Stringer for debugging output.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		b.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
