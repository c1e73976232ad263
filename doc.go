// Package sbmgen generates synthetic stochastic-block-model networks with
// deterministically repaired connectivity — fixture-grade random graphs
// that downstream community/module-discovery algorithms can consume without
// ever hitting a disconnected input.
//
// 🚀 What is sbmgen?
//
//	A small, deterministic generator toolkit:
//		• sbm/    — binary, signed and weighted SBM generators + connectivity repair
//		• matrix/ — dense symmetric adjacency kernel with invariant validators
//		• graph/  — undirected support-graph view (iteration, components)
//		• cmd/sbmgen — CLI: YAML scenario files, JSON / edge-list export
//
// ✨ Why choose sbmgen?
//
//   - Reproducible – one explicit seed fully determines every instance
//   - Guaranteed connected – spanning-chain repair over support components
//   - Honest semantics – signed instances always carry a negative edge,
//     weighted edges always carry positive integer weight
//   - Pure Go library core – the only runtime deps live in the CLI
//
// Quick ASCII example (two blocks, bridged):
//
//	    0───1        3───4
//	    │ ╲ │   ═══  │ ╲ │
//	    └── 2────────5 ──┘
//
//	block 0 = {0,1,2}, block 1 = {3,4,5}; the 2—5 edge is a repair bridge.
//
//	go get github.com/katalvlaran/sbmgen
package sbmgen
