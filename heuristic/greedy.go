package heuristic

import (
	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
)

// Greedy completes the solver point into a tour by a nearest-available-successor
// walk from node 0.
//
// At every step the candidates are the unvisited nodes; successors reached by a
// selected edge (value > 0.5) form a preferred tier, so integral fragments of the
// point are kept whenever the walk can follow them. Inside a tier the nearest
// node wins; equal costs keep the smallest id (ascending scan, strict <).
//
// Complexity: O(N²) time, O(N) space.
func Greedy(g *core.Graph, values []float64) core.Tour {
	n := g.NodeCount()
	visited := make([]bool, n)
	tour := make(core.Tour, 0, n)

	cur := 0
	visited[cur] = true
	tour = append(tour, cur)

	var (
		j        int
		best     int
		bestSel  bool
		bestCost float64
		sel      bool
		c        float64
	)
	for len(tour) < n {
		best = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			sel = selected(g, values, cur, j)
			c = g.Cost(cur, j)
			switch {
			case best == -1:
			case sel && !bestSel:
			case sel == bestSel && c < bestCost:
			default:
				continue
			}
			best, bestSel, bestCost = j, sel, c
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}

	return tour
}

// selected reports whether edge {i,j} is selected in values.
func selected(g *core.Graph, values []float64, i, j int) bool {
	id := g.EdgeID(i, j)
	if id < 0 || id >= len(values) {
		return false
	}

	return connectivity.Selected(values[id])
}
