package connectivity

import (
	"fmt"

	"github.com/katalvlaran/tspcut/core"
)

// SelectedEdges returns the ids of all selected edges in ascending order.
func SelectedEdges(g *core.Graph, values []float64) []int {
	var (
		out []int
		id  int
		m   = g.EdgeCount()
	)
	for id = 0; id < m; id++ {
		if Selected(valueAt(values, id)) {
			out = append(out, id)
		}
	}

	return out
}

// Degrees returns the number of selected edges incident to every node.
func Degrees(g *core.Graph, values []float64) []int {
	deg := make([]int, g.NodeCount())
	var i, j int
	for _, id := range SelectedEdges(g, values) {
		i, j = g.Endpoints(id)
		deg[i]++
		deg[j]++
	}

	return deg
}

// IsHamiltonianCycle reports whether the selected edges form exactly one
// simple cycle through all N nodes: a spanning partition, every degree equal
// to 2 and exactly N selected edges. Connectivity alone is not enough once
// relaxed values let a node carry more than two edges.
//
// Complexity: O(E_all + N).
func IsHamiltonianCycle(g *core.Graph, p Partition, values []float64) bool {
	if !p.IsSpanning() {
		return false
	}
	n := g.NodeCount()
	sel := SelectedEdges(g, values)
	if len(sel) != n {
		return false
	}
	deg := make([]int, n)
	var i, j int
	for _, id := range sel {
		i, j = g.Endpoints(id)
		deg[i]++
		deg[j]++
	}
	for _, d := range deg {
		if d != 2 {
			return false
		}
	}

	return true
}

// Validate checks that p is a partition of all n nodes: every node appears in
// exactly one component, components are non-empty, start with their
// representative, and Rep agrees with membership.
// Any violation wraps ErrPartitionInvariant.
//
// Complexity: O(N).
func Validate(p Partition, n int) error {
	if len(p.Rep) != n {
		return fmt.Errorf("Validate: %d representatives for %d nodes: %w", len(p.Rep), n, ErrPartitionInvariant)
	}
	seen := make([]bool, n)
	total := 0
	for ci, c := range p.Components {
		if len(c) == 0 {
			return fmt.Errorf("Validate: component %d is empty: %w", ci, ErrPartitionInvariant)
		}
		for _, v := range c {
			if v < 0 || v >= n {
				return fmt.Errorf("Validate: node %d out of range: %w", v, ErrPartitionInvariant)
			}
			if seen[v] {
				return fmt.Errorf("Validate: node %d duplicated: %w", v, ErrPartitionInvariant)
			}
			if p.Rep[v] != c[0] {
				return fmt.Errorf("Validate: node %d has rep %d, component starts at %d: %w", v, p.Rep[v], c[0], ErrPartitionInvariant)
			}
			seen[v] = true
			total++
		}
	}
	if total != n {
		return fmt.Errorf("Validate: %d of %d nodes covered: %w", total, n, ErrPartitionInvariant)
	}

	return nil
}
