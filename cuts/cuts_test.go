package cuts_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/cuts"
)

// ring5 is the 5-node instance with perimeter edges of cost 10 (tour 0-1-2-3-4-0
// costs 50) and diagonals of cost 100.
func ring5(t testing.TB) *core.Graph {
	t.Helper()
	m := make(core.Matrix, 5)
	for i := range m {
		m[i] = make([]float64, 5)
		for j := range m[i] {
			switch {
			case i == j:
			case (i+1)%5 == j || (j+1)%5 == i:
				m[i][j] = 10
			default:
				m[i][j] = 100
			}
		}
	}
	g, err := core.NewGraph(m)
	require.NoError(t, err)

	return g
}

func valuesOf(g *core.Graph, pairs ...[2]int) []float64 {
	x := make([]float64, g.EdgeCount())
	for _, p := range pairs {
		x[g.EdgeID(p[0], p[1])] = 1
	}

	return x
}

func TestFromPartition_Ring5Subtours(t *testing.T) {
	g := ring5(t)
	x := valuesOf(g, [2]int{0, 2}, [2]int{2, 4}, [2]int{0, 4}, [2]int{1, 3})
	p := connectivity.UnionFind(g, x)

	cs := cuts.FromPartition(g, p)
	require.Len(t, cs, 2)

	big := cs[0]
	assert.Equal(t, []int{0, 2, 4}, big.Nodes)
	assert.Equal(t, []int{g.EdgeID(0, 2), g.EdgeID(0, 4), g.EdgeID(2, 4)}, big.Edges)
	assert.Equal(t, 2.0, big.RHS)
	assert.Equal(t, "x(0,2) + x(0,4) + x(2,4) <= 2", big.Format(g))
	assert.Equal(t, 1.0, big.Violation(x))
	assert.True(t, big.IsViolatedBy(x, cuts.DefaultEps))

	small := cs[1]
	assert.Equal(t, []int{1, 3}, small.Nodes)
	assert.Equal(t, []int{g.EdgeID(1, 3)}, small.Edges)
	assert.Equal(t, "x(1,3) <= 1", small.Format(g))
}

func TestFromPartition_DisjointCyclesAreViolated(t *testing.T) {
	m := make(core.Matrix, 7)
	for i := range m {
		m[i] = make([]float64, 7)
		for j := range m[i] {
			if i != j {
				m[i][j] = float64(i + j)
			}
		}
	}
	g, err := core.NewGraph(m)
	require.NoError(t, err)

	// Triangle {0,1,2} and square {3,4,5,6}.
	x := valuesOf(g,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 3},
	)
	cs := cuts.FromPartition(g, connectivity.RankPropagation(g, x))
	require.Len(t, cs, 2)
	for _, c := range cs {
		assert.Equal(t, float64(len(c.Nodes)), c.LHS(x), "a cycle selects |T| edges inside T")
		assert.True(t, c.IsViolatedBy(x, cuts.DefaultEps))
		// Every tour satisfies the cut.
		tour := core.Tour{0, 3, 1, 4, 2, 5, 6}
		assert.LessOrEqual(t, c.LHS(tour.Values(g)), c.RHS)
	}
}

func TestFromPartition_SpanningYieldsNothing(t *testing.T) {
	g := ring5(t)
	x := core.Tour{0, 1, 2, 3, 4}.Values(g)
	assert.Nil(t, cuts.FromPartition(g, connectivity.UnionFind(g, x)))
}

func TestFromPartition_SkipsSingletons(t *testing.T) {
	g := ring5(t)
	x := valuesOf(g, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}) // nodes 3 and 4 isolated
	cs := cuts.FromPartition(g, connectivity.UnionFind(g, x))
	require.Len(t, cs, 1)
	assert.Equal(t, []int{0, 1, 2}, cs[0].Nodes)
}

func TestShortCycles_SharedNode(t *testing.T) {
	g := ring5(t)
	x := valuesOf(g,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2},
	)
	cs := cuts.ShortCycles(g, x)
	require.Len(t, cs, 2)
	assert.Equal(t, []int{0, 1, 2}, cs[0].Nodes)
	assert.Equal(t, []int{2, 3, 4}, cs[1].Nodes)
	for _, c := range cs {
		assert.True(t, c.IsViolatedBy(x, cuts.DefaultEps))
	}
}

func TestShortCycles_NoneOnPathOrTour(t *testing.T) {
	g := ring5(t)
	path := valuesOf(g, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})
	assert.Empty(t, cuts.ShortCycles(g, path))

	tour := core.Tour{0, 1, 2, 3, 4}.Values(g)
	assert.Empty(t, cuts.ShortCycles(g, tour), "the full cycle has length N and is not short")
}

func TestSubset_NormalizesInput(t *testing.T) {
	g := ring5(t)
	in := []int{4, 0, 4, 9, -1, 2}
	c, ok := cuts.Subset(g, in)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4}, c.Nodes)
	assert.Equal(t, 2.0, c.RHS)
	assert.Equal(t, []int{4, 0, 4, 9, -1, 2}, in, "input must not be reordered")

	assert.Zero(t, c.LHS(nil))
	assert.Equal(t, -2.0, c.Violation([]float64{}))
}

func TestSubset_RejectsTrivialAndFullSets(t *testing.T) {
	g := ring5(t)
	for _, nodes := range [][]int{nil, {3}, {2, 2, -1}, {0, 1, 2, 3, 4}, {4, 3, 2, 1, 0, 7}} {
		_, ok := cuts.Subset(g, nodes)
		assert.False(t, ok, "%v", nodes)
	}

	c, ok := cuts.Subset(g, []int{0, 1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, 3.0, c.RHS)
	tour := core.Tour{0, 1, 2, 3, 4}.Values(g)
	assert.False(t, c.IsViolatedBy(tour, cuts.DefaultEps), "largest valid subset keeps every tour")
}

func TestLHS_IgnoresOutOfRangeValues(t *testing.T) {
	g := ring5(t)
	x := valuesOf(g, [2]int{0, 2}, [2]int{2, 4}, [2]int{4, 0})
	c, ok := cuts.Subset(g, []int{0, 2, 4})
	require.True(t, ok)
	require.True(t, c.IsViolatedBy(x, cuts.DefaultEps))

	for _, bad := range []float64{math.NaN(), math.Inf(-1), -5, 2} {
		y := append([]float64(nil), x...)
		y[g.EdgeID(0, 2)] = 1
		y[g.EdgeID(2, 4)] = 1
		y[g.EdgeID(0, 4)] = bad
		assert.Equal(t, 2.0, c.LHS(y), "%v", bad)
	}

	y := append([]float64(nil), x...)
	y[g.EdgeID(0, 4)] = 1 + 1e-7
	assert.InDelta(t, 3.0, c.LHS(y), 1e-6, "solver tolerance above 1 still counts")
	y[g.EdgeID(0, 4)] = 0.25
	assert.Equal(t, 2.25, c.LHS(y))
}
