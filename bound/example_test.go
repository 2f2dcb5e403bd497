package bound_test

import (
	"fmt"

	"github.com/katalvlaran/tspcut/bound"
	"github.com/katalvlaran/tspcut/core"
)

// ExampleOneTree bounds a 3-4-5 rectangle, where the 1-tree is already a tour.
func ExampleOneTree() {
	g, _ := core.NewGraph(core.Points{Coords: []core.Node{
		{ID: 0, X: 0, Y: 0}, {ID: 1, X: 3, Y: 0}, {ID: 2, X: 3, Y: 4}, {ID: 3, X: 0, Y: 4},
	}})
	res, _ := bound.OneTree(g, bound.DefaultConfig())
	tour, cost, _ := bound.Exact(g)
	fmt.Println(res.Bound, res.Tour)
	fmt.Println(tour, cost)
	// Output:
	// 14 true
	// [0 3 2 1 | 0] 14
}
