package bound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspcut/core"
)

// Exact returns an optimal tour of g by the Held–Karp recursion
//
//	dp[S][j] = min_{k ∈ S\{j}} dp[S\{j}][k] + c(k,j),   S ∋ 0
//
// over subsets S encoded as bitmasks. Ties keep the smallest predecessor, so
// the result is deterministic. The tour starts at node 0.
//
// Complexity: O(N²·2^N) time, O(N·2^N) space.
func Exact(g *core.Graph) (core.Tour, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.NodeCount()
	if n > MaxExactNodes {
		return nil, 0, fmt.Errorf("Exact: %d nodes, limit %d: %w", n, MaxExactNodes, ErrTooLarge)
	}

	full := 1<<n - 1
	dp := make([]float64, (full+1)*n)
	parent := make([]int8, (full+1)*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prev, j, k int
		cand             float64
	)
	for mask = 1; mask <= full; mask += 2 { // odd masks contain node 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ 1<<j
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + g.Cost(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	best, last := math.Inf(1), -1
	for j = 1; j < n; j++ {
		if cand = dp[full*n+j] + g.Cost(j, 0); cand < best {
			best, last = cand, j
		}
	}

	tour := make(core.Tour, n)
	mask = full
	for i := n - 1; i >= 1; i-- {
		tour[i] = last
		k = int(parent[mask*n+last])
		mask ^= 1 << last
		last = k
	}

	cost, err := tour.Cost(g)
	if err != nil {
		return nil, 0, fmt.Errorf("Exact: %w", err)
	}

	return tour, cost, nil
}
