package connectivity

import (
	"errors"
	"math"

	"github.com/katalvlaran/tspcut/core"
)

// ErrPartitionInvariant signals an internal inconsistency: a partition that
// omits or duplicates a node, or whose representatives disagree with its
// components. It is never caused by input values and should be treated as fatal.
var ErrPartitionInvariant = errors.New("connectivity: partition invariant violated")

// Threshold is the strict lower bound for an edge value to count as selected.
const Threshold = 0.5

// upperTol admits values slightly above 1 produced by solver tolerances.
const upperTol = 1e-6

// Selected reports whether an edge value marks the edge as part of the
// candidate: finite and in (0.5, 1+1e-6].
func Selected(v float64) bool {
	return InRange(v) && v > Threshold
}

// InRange reports whether v is a usable edge value: finite and in [0, 1+1e-6].
// Values outside the range are read as 0 by every consumer of the vector.
func InRange(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	return v >= 0 && v <= 1+upperTol
}

// valueAt returns values[id] or 0 when the vector is too short.
func valueAt(values []float64, id int) float64 {
	if id < 0 || id >= len(values) {
		return 0
	}

	return values[id]
}

// Partition is a canonical split of the node set into components.
type Partition struct {
	// Rep[i] is the smallest node id of the component containing i.
	Rep []int

	// Components are ordered by representative; members are ascending.
	Components [][]int
}

// Count returns the number of components.
func (p Partition) Count() int { return len(p.Components) }

// IsSpanning reports whether all nodes form a single component.
func (p Partition) IsSpanning() bool {
	return len(p.Components) == 1 && len(p.Components[0]) == len(p.Rep)
}

// ComponentOf returns the members of the component containing node i,
// or nil when i is out of range.
func (p Partition) ComponentOf(i int) []int {
	if i < 0 || i >= len(p.Rep) {
		return nil
	}
	var c []int
	for _, c = range p.Components {
		if c[0] == p.Rep[i] {
			return c
		}
	}

	return nil
}

// Sizes returns the component sizes in component order.
func (p Partition) Sizes() []int {
	out := make([]int, len(p.Components))
	for i, c := range p.Components {
		out[i] = len(c)
	}

	return out
}

// Analyzer selects the component-finding algorithm.
type Analyzer int

const (
	// UnionFindAnalyzer runs the disjoint-set forest.
	UnionFindAnalyzer Analyzer = iota

	// RankAnalyzer runs iterative rank propagation.
	RankAnalyzer
)

// String returns the analyzer name.
func (a Analyzer) String() string {
	switch a {
	case UnionFindAnalyzer:
		return "union-find"
	case RankAnalyzer:
		return "rank-propagation"
	default:
		return "unknown"
	}
}

// Analyze dispatches to the selected algorithm. Unknown values fall back to
// union-find.
func (a Analyzer) Analyze(g *core.Graph, values []float64) Partition {
	if a == RankAnalyzer {
		return RankPropagation(g, values)
	}

	return UnionFind(g, values)
}
