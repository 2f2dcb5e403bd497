package heuristic

import (
	"fmt"

	"github.com/katalvlaran/tspcut/core"
)

// Build runs the full pipeline: Greedy completion of values, then TwoOpt.
//
// The returned Result always carries a valid tour when err is nil, including
// when the time limit cut the local search short (Result.TimedOut).
func Build(g *core.Graph, values []float64, opts ...Option) (Result, error) {
	o := NewOptions(opts...)
	if err := o.Validate(); err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}

	start := Greedy(g, values)
	initial, err := start.Cost(g)
	if err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}
	res := Result{Initial: initial}

	tour, passes, timedOut, err := TwoOpt(g, start, o)
	if err != nil {
		return Result{}, fmt.Errorf("Build: %w", err)
	}
	res.Tour = tour
	res.Cost, _ = tour.Cost(g)
	res.Passes = passes
	res.TimedOut = timedOut

	return res, nil
}
