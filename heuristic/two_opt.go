package heuristic

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tspcut/core"
)

// deadlineStride throttles wall-clock checks to one per 2048 candidate moves.
const deadlineStride = 2047

// TwoOpt improves an open tour (tour[0] == 0, closing edge implicit) by
// first-improvement segment reversal.
//
// For positions 1 ≤ i < k ≤ N−1 with a=T[i−1], b=T[i], c=T[k], d=T[(k+1) mod N]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// and the move reverses T[i..k] whenever Δ < −Eps. Returns the improved tour,
// the cost after each completed pass, and whether the time limit stopped the
// search. The input tour is not modified.
//
// Errors: core.ErrInvalidTour (wrapped) for a malformed tour, ErrInvalidOptions.
//
// Complexity: O(N²) per pass, O(N) per accepted move.
func TwoOpt(g *core.Graph, tour core.Tour, opts Options) (core.Tour, []float64, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, false, fmt.Errorf("TwoOpt: %w", err)
	}
	n := g.NodeCount()
	if err := tour.Validate(n); err != nil {
		return nil, nil, false, fmt.Errorf("TwoOpt: %w", err)
	}
	if tour[0] != 0 {
		return nil, nil, false, fmt.Errorf("TwoOpt: tour starts at %d: %w", tour[0], core.ErrInvalidTour)
	}

	cur := make(core.Tour, n)
	copy(cur, tour)

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	expired := func() bool {
		step++
		if !useDeadline || step&deadlineStride != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	var (
		passes     []float64
		i, k       int
		a, b, c, d int
		delta      float64
		cost       float64
		moved      bool
	)
	for opts.MaxPasses == 0 || len(passes) < opts.MaxPasses {
		moved = false
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				if expired() {
					return cur, passes, true, nil
				}
				a, b, c = cur[i-1], cur[i], cur[k]
				d = cur[(k+1)%n]
				delta = g.Cost(a, c) + g.Cost(b, d) - g.Cost(a, b) - g.Cost(c, d)
				if delta < -opts.Eps {
					reverse(cur, i, k)
					moved = true
				}
			}
		}
		if !moved {
			break
		}
		cost, _ = cur.Cost(g) // cur stays a permutation
		passes = append(passes, cost)
	}

	return cur, passes, false, nil
}

// reverse flips t[i..k] in place.
func reverse(t core.Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
