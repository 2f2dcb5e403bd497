package tsplib

import (
	"errors"

	"github.com/katalvlaran/tspcut/core"
)

// Sentinel errors.
var (
	ErrFormat      = errors.New("tsplib: malformed file")
	ErrUnsupported = errors.New("tsplib: unsupported feature")
)

// MaxDimension caps DIMENSION; the dense cost matrix holds Dimension² floats.
const MaxDimension = 10000

// Edge weight types.
const (
	Euclidean2D = "EUC_2D"
	Ceiling2D   = "CEIL_2D"
	PseudoEuc   = "ATT"
	Geographic  = "GEO"
	Explicit    = "EXPLICIT"
)

// Problem is a parsed symmetric instance with a dense cost matrix.
type Problem struct {
	Name         string
	Comment      string
	Type         string
	Dimension    int
	WeightType   string
	WeightFormat string

	// Coords holds node positions when the file provides them (coordinates or
	// display data); nil otherwise.
	Coords []core.Node

	w []float64 // Dimension × Dimension
}

var (
	_ core.Instance   = (*Problem)(nil)
	_ core.Positioner = (*Problem)(nil)
)

// NodeCount implements core.Instance.
func (p *Problem) NodeCount() int { return p.Dimension }

// Cost implements core.Instance; 0 for out-of-range indices.
func (p *Problem) Cost(i, j int) float64 {
	if i < 0 || j < 0 || i >= p.Dimension || j >= p.Dimension {
		return 0
	}

	return p.w[i*p.Dimension+j]
}

// Position implements core.Positioner; zero when no coordinates are known.
func (p *Problem) Position(i int) (float64, float64) {
	if i < 0 || i >= len(p.Coords) {
		return 0, 0
	}

	return p.Coords[i].X, p.Coords[i].Y
}
