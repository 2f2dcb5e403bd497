package formulation

import (
	"fmt"

	"github.com/katalvlaran/tspcut/core"
)

// StartValues builds a complete, feasible model point from tour, suitable as a
// MIP start. The tour is rotated to begin at node 0; directed models orient
// arcs along the visit order, ranks are positions (u_0 = 1) and flows carry
// N−1−k units on the k-th arc.
//
// Errors: core.ErrInvalidTour (wrapped) for a tour that is not a permutation.
// Complexity: O(N + columns).
func (m *Model) StartValues(tour core.Tour) ([]float64, error) {
	if err := tour.Validate(m.n); err != nil {
		return nil, fmt.Errorf("StartValues: %w", err)
	}
	t := rotate(tour)
	point := make([]float64, len(m.Vars))

	var (
		k    int
		a, b int
	)
	for k = 0; k < m.n; k++ {
		a, b = t[k], t[(k+1)%m.n]
		switch m.Strategy {
		case SubsetCuts:
			point[m.EdgeVar(a, b)] = 1
		case Ordering:
			point[m.ArcVar(a, b)] = 1
			point[m.RankVar(a)] = float64(k + 1)
		case Flow:
			point[m.ArcVar(a, b)] = 1
			point[m.FlowVar(a, b)] = float64(m.n - 1 - k)
		}
	}

	return point, nil
}

// rotate returns a copy of t starting at node 0.
func rotate(t core.Tour) core.Tour {
	out := make(core.Tour, len(t))
	var pivot int
	for pivot = range t {
		if t[pivot] == 0 {
			break
		}
	}
	for k := range t {
		out[k] = t[(pivot+k)%len(t)]
	}

	return out
}
