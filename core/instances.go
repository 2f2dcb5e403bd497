package core

import "math"

// Points is a Euclidean Instance over 2D node positions.
// With Round set, costs are rounded to the nearest integer (TSPLIB EUC_2D).
type Points struct {
	Coords []Node
	Round  bool
}

var (
	_ Instance   = Points{}
	_ Positioner = Points{}
	_ Instance   = Matrix(nil)
	_ Instance   = (*Graph)(nil)
)

// NodeCount returns the number of coordinates.
func (p Points) NodeCount() int { return len(p.Coords) }

// Cost returns the (optionally rounded) Euclidean distance between i and j.
func (p Points) Cost(i, j int) float64 {
	d := math.Hypot(p.Coords[i].X-p.Coords[j].X, p.Coords[i].Y-p.Coords[j].Y)
	if p.Round {
		return math.Floor(d + 0.5)
	}

	return d
}

// Position returns the coordinates of node i.
func (p Points) Position(i int) (float64, float64) { return p.Coords[i].X, p.Coords[i].Y }

// Matrix is an Instance backed by a square cost matrix.
// Only the off-diagonal entries are read.
type Matrix [][]float64

// NodeCount returns the number of rows.
func (m Matrix) NodeCount() int { return len(m) }

// Cost returns m[i][j], or NaN when row i is too short (rejected by NewGraph).
func (m Matrix) Cost(i, j int) float64 {
	if j >= len(m[i]) {
		return math.NaN()
	}

	return m[i][j]
}
