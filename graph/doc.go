// SPDX-License-Identifier: MIT

// Package graph provides the undirected, index-based view over a synthetic
// instance's support structure: an edge u—v exists iff the adjacency matrix
// carries a nonzero magnitude at (u, v).
//
// Design:
//   - Vertices are the integers 0..n-1; no string IDs, no metadata.
//   - Simple graph only: no self-loops, no parallel edges, no direction.
//   - Single-writer model: the owning generator populates the graph once and
//     returns it as a read-only projection; there is no internal locking.
//   - Deterministic iteration: Neighbors ascends, Edges ascends
//     lexicographically, ConnectedComponents enumerates in first-seen-root
//     order with BFS discovery order inside each component.
//
// The component sweep is the substrate of the connectivity repairer in
// package sbm; everything else is the node/edge surface consumers iterate.
package graph
