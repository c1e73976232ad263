// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric kernel used by the sbm
// generators: a square, row-major float64 matrix with symmetric write
// helpers and invariant validators.
//
// Scope (deliberately small):
//   - Dense: flat row-major storage, square shape only.
//   - Symmetric mutation helpers (SetSym, Symmetrize, ZeroDiag).
//   - Validators for the two invariants every adjacency matrix in this
//     module must hold: symmetry and a zero diagonal.
//
// Indexing policy: At/Set are hot-path accessors used inside O(n²)
// sampling loops and therefore perform no bounds checks; an out-of-range
// index is a programmer error and panics via the runtime. Shape errors
// (construction) and invariant violations (validation) surface as
// sentinel errors checked with errors.Is.
//
// Determinism: all operations are pure in-memory array transformations;
// no randomness, no goroutines, no global state.
package matrix
