// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/sbmgen/sbm"
)

// exportEdge is one undirected edge in the JSON bundle, with the matrix
// cell value as weight (1 for binary, ±1 for signed, integer for weighted).
type exportEdge struct {
	U      int     `json:"u"`
	V      int     `json:"v"`
	Weight float64 `json:"weight"`
}

// exportBundle is the JSON shape of a generated instance.
type exportBundle struct {
	Name    string       `json:"name,omitempty"`
	Variant string       `json:"variant"`
	N       int          `json:"n"`
	Seed    int64        `json:"seed"`
	Labels  []int        `json:"labels"`
	Matrix  [][]float64  `json:"matrix"`
	Edges   []exportEdge `json:"edges"`
}

// writeJSON serializes the instance as an indented JSON bundle.
func writeJSON(w io.Writer, sc Scenario, inst *sbm.Instance) error {
	n := inst.A.Order()

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = inst.A.At(i, j)
		}
		rows[i] = row
	}

	edges := inst.G.Edges()
	out := exportBundle{
		Name:    sc.Name,
		Variant: sc.Variant,
		N:       n,
		Seed:    sc.Seed,
		Labels:  inst.Labels,
		Matrix:  rows,
		Edges:   make([]exportEdge, 0, len(edges)),
	}
	for _, e := range edges {
		out.Edges = append(out.Edges, exportEdge{U: e.U, V: e.V, Weight: inst.A.At(e.U, e.V)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("sbmgen: encode json: %w", err)
	}

	return nil
}

// writeEdgeList serializes the instance as "u v weight" lines, one
// undirected edge per line, ascending lexicographic order.
func writeEdgeList(w io.Writer, inst *sbm.Instance) error {
	for _, e := range inst.G.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d %g\n", e.U, e.V, inst.A.At(e.U, e.V)); err != nil {
			return fmt.Errorf("sbmgen: write edge list: %w", err)
		}
	}

	return nil
}
