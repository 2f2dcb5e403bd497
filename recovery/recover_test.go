package recovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/recovery"
)

func unitGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	m := make(core.Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = 1
			}
		}
	}
	g, err := core.NewGraph(m)
	require.NoError(t, err)

	return g
}

func TestRecover_FourNodeTour(t *testing.T) {
	g := unitGraph(t, 4)
	want := core.Tour{0, 2, 1, 3}

	got, err := recovery.Recover(g, want.Values(g))
	require.NoError(t, err)
	assert.True(t, got.Equivalent(want), "got %v", got)
	assert.Equal(t, core.Tour{0, 2, 1, 3}, got, "walk takes the smallest selected neighbour first")
}

func TestRecover_RoundTrip(t *testing.T) {
	g := unitGraph(t, 9)
	for _, tour := range []core.Tour{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{0, 8, 7, 6, 5, 4, 3, 2, 1},
		{3, 0, 5, 8, 1, 7, 2, 6, 4},
	} {
		got, err := recovery.Recover(g, tour.Values(g))
		require.NoError(t, err)
		assert.True(t, got.Equivalent(tour), "%v vs %v", got, tour)
		assert.Equal(t, 0, got[0])
	}
}

func TestRecover_FractionalNoiseIsIgnored(t *testing.T) {
	g := unitGraph(t, 5)
	x := core.Tour{0, 3, 1, 4, 2}.Values(g)
	for id := range x {
		if x[id] == 0 {
			x[id] = 0.25
		} else {
			x[id] = 0.999999
		}
	}
	got, err := recovery.Recover(g, x)
	require.NoError(t, err)
	assert.True(t, got.Equivalent(core.Tour{0, 3, 1, 4, 2}))
}

func TestRecover_Incomplete(t *testing.T) {
	g := unitGraph(t, 4)
	sel := func(pairs ...[2]int) []float64 {
		x := make([]float64, g.EdgeCount())
		for _, p := range pairs {
			x[g.EdgeID(p[0], p[1])] = 1
		}
		return x
	}

	cases := map[string][]float64{
		"two disjoint edges": sel([2]int{0, 1}, [2]int{2, 3}),
		"nothing selected":   sel(),
		"path":               sel([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}),
		"short cycle":        sel([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}),
		"extra chord":        sel([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{1, 3}),
		"nil vector":         nil,
	}
	for name, x := range cases {
		_, err := recovery.Recover(g, x)
		assert.ErrorIs(t, err, recovery.ErrIncompleteSolution, name)
	}
}
