// Package core_test exercises graph construction, validation and edge indexing.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcut/core"
)

// ring5 returns the 5-node instance whose perimeter 0-1-2-3-4-0 costs 10 per
// edge and whose diagonals cost 100.
func ring5() core.Matrix {
	m := make(core.Matrix, 5)
	for i := range m {
		m[i] = make([]float64, 5)
		for j := range m[i] {
			switch {
			case i == j:
				m[i][j] = 0
			case (i+1)%5 == j || (j+1)%5 == i:
				m[i][j] = 10
			default:
				m[i][j] = 100
			}
		}
	}

	return m
}

func TestNewGraph_Valid(t *testing.T) {
	g, err := core.NewGraph(ring5())
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.Equal(t, 10.0, g.Cost(0, 1))
	assert.Equal(t, 100.0, g.Cost(0, 2))
	assert.Equal(t, g.Cost(3, 1), g.Cost(1, 3))
	assert.Zero(t, g.Cost(2, 2))
	assert.Zero(t, g.Cost(-1, 2))
}

func TestNewGraph_Invalid(t *testing.T) {
	tests := []struct {
		name string
		inst core.Instance
	}{
		{"nil", nil},
		{"two nodes", core.Matrix{{0, 1}, {1, 0}}},
		{"negative", core.Matrix{{0, -1, 2}, {-1, 0, 3}, {2, 3, 0}}},
		{"nan", core.Matrix{{0, math.NaN(), 2}, {1, 0, 3}, {2, 3, 0}}},
		{"inf", core.Matrix{{0, 1, math.Inf(1)}, {1, 0, 3}, {math.Inf(1), 3, 0}}},
		{"asymmetric", core.Matrix{{0, 1, 2}, {1, 0, 3}, {2, 4, 0}}},
		{"ragged", core.Matrix{{0, 1, 2}, {1, 0}, {2, 3, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.inst)
			require.ErrorIs(t, err, core.ErrInvalidInstance)
			assert.Nil(t, g)
		})
	}
}

func TestEdgeID_LayoutAndSymmetry(t *testing.T) {
	g, err := core.NewGraph(ring5())
	require.NoError(t, err)

	// Row-major upper triangle: (0,1)=0 … (0,4)=3, (1,2)=4 … (3,4)=9.
	assert.Equal(t, 0, g.EdgeID(0, 1))
	assert.Equal(t, 3, g.EdgeID(0, 4))
	assert.Equal(t, 4, g.EdgeID(1, 2))
	assert.Equal(t, 7, g.EdgeID(2, 3))
	assert.Equal(t, 9, g.EdgeID(3, 4))

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				assert.Equal(t, -1, g.EdgeID(i, j))
				continue
			}
			id := g.EdgeID(i, j)
			require.Equal(t, id, g.EdgeID(j, i), "EdgeID must ignore argument order")
			a, b := g.Endpoints(id)
			assert.Equal(t, min(i, j), a)
			assert.Equal(t, max(i, j), b)
			seen[id] = true
		}
	}
	assert.Len(t, seen, g.EdgeCount())
	assert.Equal(t, -1, g.EdgeID(0, 5))
	a, b := g.Endpoints(10)
	assert.Equal(t, -1, a)
	assert.Equal(t, -1, b)
}

func TestEdges_CopyAndWeights(t *testing.T) {
	g, err := core.NewGraph(ring5())
	require.NoError(t, err)

	es := g.Edges()
	require.Len(t, es, 10)
	es[0].W = -5 // mutating the copy must not leak into the graph
	e, ok := g.Edge(0)
	require.True(t, ok)
	assert.Equal(t, 10.0, e.W)
	assert.Equal(t, 1, e.Other(0))
	assert.Equal(t, -1, e.Other(3))

	w := g.EdgeWeights()
	for id, ed := range g.Edges() {
		assert.Equal(t, ed.W, w[id])
	}
	_, ok = g.Edge(42)
	assert.False(t, ok)
}

func TestPoints_PositionsAndRounding(t *testing.T) {
	pts := core.Points{Coords: []core.Node{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 1.4}}, Round: true}
	g, err := core.NewGraph(pts)
	require.NoError(t, err)

	assert.Equal(t, 5.0, g.Cost(0, 1))
	assert.Equal(t, 1.0, g.Cost(0, 2)) // 1.4 rounds to 1
	x, y := g.Position(1)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	nodes := g.Nodes()
	assert.Equal(t, 2, nodes[2].ID)
	assert.Equal(t, 1.4, nodes[2].Y)
}
