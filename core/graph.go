package core

import (
	"fmt"
	"math"
)

// Graph is the frozen complete undirected graph built from an Instance.
//
// All fields are written once by NewGraph and only read afterwards, so a
// *Graph may be shared by any number of goroutines without synchronization.
type Graph struct {
	n int // number of nodes

	// w is the dense cost buffer: w[i*n+j] == Cost(i,j); diagonal is 0.
	w []float64

	// ends[id] holds the endpoints of edge id (I < J).
	ends [][2]int

	// nodes holds identities and (optional) positions.
	nodes []Node
}

// NewGraph validates inst and freezes it into a Graph.
//
// Validation stages:
//  1. inst non-nil and N ≥ MinNodes.
//  2. Every off-diagonal cost finite and non-negative.
//  3. Symmetry: |c(i,j) − c(j,i)| ≤ 1e-9 (the engine is symmetric).
//
// The Instance is not retained; costs are copied into a dense buffer.
// Every failure wraps ErrInvalidInstance.
//
// Complexity: O(N²) time and memory.
func NewGraph(inst Instance) (*Graph, error) {
	// Stage 1: shape.
	if inst == nil {
		return nil, fmt.Errorf("NewGraph: nil instance: %w", ErrInvalidInstance)
	}
	n := inst.NodeCount()
	if n < MinNodes {
		return nil, fmt.Errorf("NewGraph: %d nodes, need at least %d: %w", n, MinNodes, ErrInvalidInstance)
	}

	g := &Graph{
		n:     n,
		w:     make([]float64, n*n),
		ends:  make([][2]int, n*(n-1)/2),
		nodes: make([]Node, n),
	}

	// Stage 2: prefetch and check values.
	var (
		i, j int
		c    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal is never consulted
			}
			c = inst.Cost(i, j)
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("NewGraph: cost(%d,%d) is not finite: %w", i, j, ErrInvalidInstance)
			}
			if c < 0 {
				return nil, fmt.Errorf("NewGraph: cost(%d,%d)=%g is negative: %w", i, j, c, ErrInvalidInstance)
			}
			g.w[i*n+j] = c
		}
	}

	// Stage 3: symmetry and edge table.
	var id int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(g.w[i*n+j]-g.w[j*n+i]) > symTol {
				return nil, fmt.Errorf("NewGraph: cost(%d,%d) != cost(%d,%d): %w", i, j, j, i, ErrInvalidInstance)
			}
			g.ends[id] = [2]int{i, j}
			id++
		}
	}

	// Node identities, with positions when available.
	pos, hasPos := inst.(Positioner)
	for i = 0; i < n; i++ {
		g.nodes[i].ID = i
		if hasPos {
			g.nodes[i].X, g.nodes[i].Y = pos.Position(i)
		}
	}

	return g, nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns N(N−1)/2, the number of edge variables.
func (g *Graph) EdgeCount() int { return len(g.ends) }

// Cost returns the weight of {i,j}; 0 for i == j or out-of-range indices.
// *Graph satisfies Instance, so a graph can be re-validated or wrapped.
func (g *Graph) Cost(i, j int) float64 {
	if i < 0 || j < 0 || i >= g.n || j >= g.n {
		return 0
	}

	return g.w[i*g.n+j]
}

// EdgeID returns the id of the unordered pair {i,j}, invariant under argument
// order, or -1 when i == j or either index is out of range.
//
// Layout: id = i·(2N−i−1)/2 + (j−i−1) for i < j.
// Complexity: O(1).
func (g *Graph) EdgeID(i, j int) int {
	if i == j || i < 0 || j < 0 || i >= g.n || j >= g.n {
		return -1
	}
	if i > j {
		i, j = j, i
	}

	return i*(2*g.n-i-1)/2 + (j - i - 1)
}

// Endpoints returns (I, J), I < J, of edge id, or (-1, -1) if id is out of range.
// Complexity: O(1).
func (g *Graph) Endpoints(id int) (int, int) {
	if id < 0 || id >= len(g.ends) {
		return -1, -1
	}

	return g.ends[id][0], g.ends[id][1]
}

// Edge returns the full Edge record for id; ok is false when id is out of range.
func (g *Graph) Edge(id int) (Edge, bool) {
	if id < 0 || id >= len(g.ends) {
		return Edge{}, false
	}
	i, j := g.ends[id][0], g.ends[id][1]

	return Edge{ID: id, I: i, J: j, W: g.w[i*g.n+j]}, true
}

// Edges returns a fresh slice of all edges ordered by ID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.ends))
	var (
		id   int
		i, j int
	)
	for id = range g.ends {
		i, j = g.ends[id][0], g.ends[id][1]
		out[id] = Edge{ID: id, I: i, J: j, W: g.w[i*g.n+j]}
	}

	return out
}

// Nodes returns a fresh slice of node identities (and positions, if any).
func (g *Graph) Nodes() []Node {
	out := make([]Node, g.n)
	copy(out, g.nodes)

	return out
}

// Position implements Positioner; zero for instances without coordinates.
func (g *Graph) Position(i int) (float64, float64) {
	if i < 0 || i >= g.n {
		return 0, 0
	}

	return g.nodes[i].X, g.nodes[i].Y
}

// EdgeWeights returns the edge cost vector indexed by edge id, i.e. the
// objective coefficients of the undirected formulation.
func (g *Graph) EdgeWeights() []float64 {
	out := make([]float64, len(g.ends))
	var id int
	for id = range g.ends {
		out[id] = g.w[g.ends[id][0]*g.n+g.ends[id][1]]
	}

	return out
}
