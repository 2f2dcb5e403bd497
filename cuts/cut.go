package cuts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
)

// DefaultEps is the violation tolerance used by callers that have no own policy.
const DefaultEps = 1e-6

// Cut is the inequality Σ_{e ∈ Edges} x_e ≤ RHS over edge variables.
type Cut struct {
	// Nodes is the subset T, ascending.
	Nodes []int

	// Edges are the ids of every pair inside T, ascending.
	Edges []int

	// RHS is |T| − 1.
	RHS float64
}

// Subset builds the cut for node set nodes. Duplicates and out-of-range ids
// are dropped; the input slice is not modified. ok is false unless the
// remaining set T has 2 ≤ |T| < N: smaller sets bound nothing and the full
// node set would cut off every tour.
//
// Complexity: O(|T|²).
func Subset(g *core.Graph, nodes []int) (Cut, bool) {
	n := g.NodeCount()
	in := make([]bool, n)
	t := make([]int, 0, len(nodes))
	for _, v := range nodes {
		if v < 0 || v >= n || in[v] {
			continue
		}
		in[v] = true
		t = append(t, v)
	}
	if len(t) < 2 || len(t) >= n {
		return Cut{}, false
	}
	sort.Ints(t)

	edges := make([]int, 0, len(t)*(len(t)-1)/2)
	var a, b int
	for a = 0; a < len(t); a++ {
		for b = a + 1; b < len(t); b++ {
			edges = append(edges, g.EdgeID(t[a], t[b]))
		}
	}
	sort.Ints(edges)

	return Cut{Nodes: t, Edges: edges, RHS: float64(len(t) - 1)}, true
}

// LHS evaluates Σ x_e at values. Entries missing from a short vector and
// entries rejected by connectivity.InRange count as 0.
func (c Cut) LHS(values []float64) float64 {
	var sum float64
	for _, id := range c.Edges {
		if id < len(values) && connectivity.InRange(values[id]) {
			sum += values[id]
		}
	}

	return sum
}

// Violation returns LHS − RHS; positive means the point violates the cut.
func (c Cut) Violation(values []float64) float64 {
	return c.LHS(values) - c.RHS
}

// IsViolatedBy reports whether values exceeds the cut by more than eps.
func (c Cut) IsViolatedBy(values []float64, eps float64) bool {
	return c.Violation(values) > eps
}

// Format renders the cut as "x(0,2) + x(0,4) + x(2,4) <= 2".
func (c Cut) Format(g *core.Graph) string {
	var b strings.Builder
	for k, id := range c.Edges {
		if k > 0 {
			b.WriteString(" + ")
		}
		i, j := g.Endpoints(id)
		fmt.Fprintf(&b, "x(%d,%d)", i, j)
	}
	fmt.Fprintf(&b, " <= %g", c.RHS)

	return b.String()
}
