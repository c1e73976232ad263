// SPDX-License-Identifier: MIT
// Package graph: connected-component sweep.

package graph

// ConnectedComponents finds all connected components of g.
// Components are enumerated in first-seen-root order (roots scanned in
// ascending vertex order); members appear in BFS discovery order. Every
// vertex belongs to exactly one component; an isolated vertex forms a
// singleton.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags, queue and output.
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, g.n)
	var comps [][]int

	for root := 0; root < g.n; root++ {
		if seen[root] {
			continue
		}
		// BFS to collect the component of root.
		queue := []int{root}
		seen[root] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether g consists of a single connected component.
// A single-vertex graph is connected by definition.
func (g *Graph) IsConnected() bool {
	return len(g.ConnectedComponents()) == 1
}
