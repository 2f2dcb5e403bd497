package bound

import (
	"math"
	"time"

	"github.com/katalvlaran/tspcut/core"
)

// deadlineStride masks the iteration counter between wall-clock probes.
const deadlineStride = 7

// OneTree computes the Held–Karp 1-tree lower bound of g rooted at node 0.
//
// The loop stops early when a 1-tree is a tour (subgradient zero), when the
// step vanishes, or when cfg.TimeLimit expires; the best bound so far is
// returned in every case.
//
// Complexity: O(cfg.MaxIter · N²) time, O(N) extra space.
func OneTree(g *core.Graph, cfg Config) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if cfg.MaxIter < 1 {
		cfg.MaxIter = 1
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 2 {
		cfg.Alpha = 0.9
	}

	n := g.NodeCount()
	e := engine{
		g:      g,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}

	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = time.Now().Add(cfg.TimeLimit)
	}
	haveUB := cfg.UB > 0 && !math.IsInf(cfg.UB, 0) && !math.IsNaN(cfg.UB)

	res := Result{Bound: math.Inf(-1)}
	var (
		i     int
		iter  int
		sumPi float64
		norm2 float64
		diff  int
		step  float64
		bound float64
	)
	for iter = 0; iter < cfg.MaxIter; iter++ {
		if !deadline.IsZero() && iter&deadlineStride == deadlineStride && time.Now().After(deadline) {
			res.TimedOut = true
			break
		}

		bound = e.build()
		res.Iterations++
		sumPi = 0
		for i = 0; i < n; i++ {
			sumPi += e.pi[i]
		}
		bound -= 2 * sumPi
		if bound > res.Bound {
			res.Bound = bound
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			diff = e.deg[i] - 2
			norm2 += float64(diff * diff)
		}
		if norm2 == 0 {
			res.Tour = true
			break
		}

		if haveUB {
			step = math.Max(cfg.UB-bound, 0)
			step = cfg.Alpha * step / norm2
		} else {
			step = cfg.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			e.pi[i] += step * float64(e.deg[i]-2)
		}
	}

	res.Bound = round1e9(res.Bound)
	res.Degrees = append([]int(nil), e.deg...)

	return res, nil
}

// engine holds the buffers reused across 1-tree builds.
type engine struct {
	g      *core.Graph
	n      int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func (e *engine) reduced(u, v int) float64 {
	return e.g.Cost(u, v) + e.pi[u] + e.pi[v]
}

// build fills e.deg with a minimum 1-tree on reduced costs and returns its
// reduced cost. Complete graphs always admit one, so there is no failure path.
func (e *engine) build() float64 {
	var (
		v, u, best, it int
		c, total       float64
	)
	for v = 0; v < e.n; v++ {
		e.deg[v] = 0
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = math.Inf(1)
	}

	// Prim over V\{0}, started at node 1.
	e.key[1] = 0
	for it = 1; it < e.n; it++ {
		best = -1
		for v = 1; v < e.n; v++ {
			if e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		e.inTree[best] = true
		if u = e.parent[best]; u != -1 {
			total += e.reduced(best, u)
			e.deg[best]++
			e.deg[u]++
		}
		for v = 1; v < e.n; v++ {
			if e.inTree[v] {
				continue
			}
			if c = e.reduced(best, v); c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest edges at the root.
	m1, m2 := math.Inf(1), math.Inf(1)
	to1, to2 := -1, -1
	for v = 1; v < e.n; v++ {
		c = e.reduced(0, v)
		switch {
		case c < m1:
			m2, to2 = m1, to1
			m1, to1 = c, v
		case c < m2:
			m2, to2 = c, v
		}
	}
	total += m1 + m2
	e.deg[0] += 2
	e.deg[to1]++
	e.deg[to2]++

	return total
}
