package recovery

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
)

// ErrIncompleteSolution indicates that the selected edges do not form a single
// Hamiltonian cycle.
var ErrIncompleteSolution = errors.New("recovery: incomplete solution")

// Recover returns the tour selected by values, starting at node 0.
//
// Complexity: O(N²) time, O(N) space.
func Recover(g *core.Graph, values []float64) (core.Tour, error) {
	n := g.NodeCount()
	visited := make([]bool, n)
	tour := make(core.Tour, 0, n)

	var (
		prev = -1
		cur  = 0
		next int
		j    int
	)
	for {
		visited[cur] = true
		tour = append(tour, cur)

		next = -1
		for j = 0; j < n; j++ {
			if j == cur || j == prev {
				continue
			}
			if isSelected(g, values, cur, j) {
				next = j
				break
			}
		}
		switch {
		case next == -1:
			return nil, fmt.Errorf("Recover: dead end at node %d after %d nodes: %w", cur, len(tour), ErrIncompleteSolution)
		case next == 0 && len(tour) < n:
			return nil, fmt.Errorf("Recover: cycle closes after %d of %d nodes: %w", len(tour), n, ErrIncompleteSolution)
		case next == 0:
			if k := len(connectivity.SelectedEdges(g, values)); k != n {
				return nil, fmt.Errorf("Recover: %d selected edges, want %d: %w", k, n, ErrIncompleteSolution)
			}
			return tour, nil
		case visited[next]:
			return nil, fmt.Errorf("Recover: node %d revisited: %w", next, ErrIncompleteSolution)
		}
		prev, cur = cur, next
	}
}

func isSelected(g *core.Graph, values []float64, i, j int) bool {
	id := g.EdgeID(i, j)

	return id >= 0 && id < len(values) && connectivity.Selected(values[id])
}
