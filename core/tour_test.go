package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcut/core"
)

func TestTour_Validate(t *testing.T) {
	require.NoError(t, core.Tour{0, 2, 1, 3}.Validate(4))

	bad := []core.Tour{
		{0, 1, 2},       // short
		{0, 1, 2, 2},    // repeat
		{0, 1, 2, 4},    // out of range
		{0, -1, 2, 3},   // negative
		{0, 1},          // below MinNodes
		{0, 1, 2, 3, 0}, // closed form is not accepted
	}
	for _, tr := range bad {
		assert.ErrorIs(t, tr.Validate(4), core.ErrInvalidTour, "tour %v", []int(tr))
	}
}

func TestTour_Cost(t *testing.T) {
	g, err := core.NewGraph(ring5())
	require.NoError(t, err)

	c, err := core.Tour{0, 1, 2, 3, 4}.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 50.0, c)

	c, err = core.Tour{0, 2, 4, 1, 3}.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 500.0, c)

	_, err = core.Tour{0, 1, 2}.Cost(g)
	assert.ErrorIs(t, err, core.ErrInvalidTour)
}

func TestTour_CanonicalAndEquivalent(t *testing.T) {
	a := core.Tour{2, 3, 0, 1}
	assert.Equal(t, core.Tour{0, 1, 2, 3}, a.Canonical())

	// Reflection of the same cycle.
	b := core.Tour{0, 3, 2, 1}
	assert.Equal(t, core.Tour{0, 1, 2, 3}, b.Canonical())
	assert.True(t, a.Equivalent(b))
	assert.False(t, a.Equivalent(core.Tour{0, 2, 1, 3}))
	assert.False(t, a.Equivalent(core.Tour{0, 1, 2}))

	// Canonical never mutates its receiver.
	assert.Equal(t, core.Tour{2, 3, 0, 1}, a)
}

func TestTour_ValuesAndClosed(t *testing.T) {
	g, err := core.NewGraph(ring5())
	require.NoError(t, err)

	tr := core.Tour{0, 1, 2, 3, 4}
	x := tr.Values(g)
	require.Len(t, x, g.EdgeCount())

	var sum float64
	for _, v := range x {
		sum += v
	}
	assert.Equal(t, 5.0, sum)
	assert.Equal(t, 1.0, x[g.EdgeID(4, 0)])
	assert.Equal(t, 0.0, x[g.EdgeID(0, 2)])

	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, tr.Closed())
	assert.Equal(t, "[0 1 2 3 4 | 0]", tr.String())
	assert.Equal(t, "[]", core.Tour(nil).String())
}

func TestGap(t *testing.T) {
	assert.InDelta(t, 10.0, core.Gap(110, 100), 1e-12)
	assert.Zero(t, core.Gap(0, 0))
	assert.True(t, math.IsInf(core.Gap(1, 0), 1))
}
