package core

import "errors"

// Sentinel errors for the graph model.
var (
	// ErrInvalidInstance indicates a malformed input graph: fewer than three
	// nodes, a NaN/±Inf/negative cost, or an asymmetric cost function.
	// It is raised at build time only, never during search.
	ErrInvalidInstance = errors.New("core: invalid instance")

	// ErrInvalidTour indicates a node sequence that is not a permutation of 0..N-1.
	ErrInvalidTour = errors.New("core: invalid tour")
)

// MinNodes is the smallest instance for which a Hamiltonian cycle is defined.
const MinNodes = 3

// symTol is the structural tolerance for the symmetry check |c(i,j) − c(j,i)|.
const symTol = 1e-9

// Instance is the problem input consumed from the environment.
// Implementations must return the same cost for the same pair on every call.
type Instance interface {
	// NodeCount returns N, the number of nodes.
	NodeCount() int

	// Cost returns the travel cost between nodes i and j (i ≠ j).
	Cost(i, j int) float64
}

// Positioner is implemented by instances that carry node coordinates.
type Positioner interface {
	Position(i int) (x, y float64)
}

// Node is an immutable node identity with an optional 2D position.
type Node struct {
	// ID is the node index in [0..N-1].
	ID int

	// X, Y are the coordinates (zero when the instance has no positions).
	X, Y float64
}

// Edge is an unordered node pair {I,J} with I < J.
type Edge struct {
	// ID is the edge index; equal to Graph.EdgeID(I, J).
	ID int

	// I is the smaller endpoint, J the larger one.
	I, J int

	// W is the symmetric, non-negative travel cost.
	W float64
}

// Other returns the endpoint of e opposite to v, or -1 if v is not an endpoint.
func (e Edge) Other(v int) int {
	switch v {
	case e.I:
		return e.J
	case e.J:
		return e.I
	default:
		return -1
	}
}
