// SPDX-License-Identifier: MIT
// Package graph: core type and node/edge surface.
//
// Contract:
//   - New(n) with n >= 1; otherwise ErrBadOrder.
//   - AddEdge validates range and loop policy, is idempotent for duplicates.
//   - All read accessors are deterministic for a fixed edge set.
//
// Complexity: AddEdge/HasEdge/Degree O(1) expected; Neighbors O(d log d);
// Edges O(V + E log E) for the sorted emission.

package graph

import (
	"fmt"
	"sort"
)

// minGraphOrder is the smallest admissible vertex count.
const minGraphOrder = 1

// Edge is an unordered vertex pair reported with U < V.
type Edge struct {
	U, V int
}

// Graph is a simple undirected graph over vertices 0..n-1 backed by
// adjacency sets. Not safe for concurrent mutation; see doc.go.
type Graph struct {
	n     int                // vertex count
	adj   []map[int]struct{} // adj[u] = set of neighbors of u
	edges int                // number of undirected edges
}

// New creates an edgeless graph with n vertices.
// Returns ErrBadOrder when n < 1.
func New(n int) (*Graph, error) {
	if n < minGraphOrder {
		return nil, fmt.Errorf("New: n=%d < min=%d: %w", n, minGraphOrder, ErrBadOrder)
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Graph{n: n, adj: adj}, nil
}

// Order returns the vertex count n.
func (g *Graph) Order() int {
	return g.n
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// AddEdge inserts the undirected edge u—v.
// Returns ErrVertexRange for endpoints outside [0, n) and ErrSelfLoop for
// u == v. Adding an existing edge is a no-op (simple graph).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, g.n, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if _, ok := g.adj[u][v]; ok {
		return nil // duplicate: simple-graph collapse
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether the undirected edge u—v exists.
// Out-of-range endpoints report false rather than erroring (query surface).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of u, or 0 for out-of-range u.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}

	return len(g.adj[u])
}

// Neighbors returns the neighbors of u in ascending order.
// Returns nil for out-of-range u or an isolated vertex.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n || len(g.adj[u]) == 0 {
		return nil
	}
	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Edges returns every undirected edge exactly once as {U, V} with U < V,
// sorted lexicographically. Deterministic for a fixed edge set.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	var u, v int
	for u = 0; u < g.n; u++ {
		for v = range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
