package cuts

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
)

// FromPartition emits one subset cut per component T with 2 ≤ |T| < N, in
// component order. A spanning partition yields nil: the point is a tour
// candidate and must be confirmed by a degree check, not by this function.
//
// Complexity: O(Σ|T|²).
func FromPartition(g *core.Graph, p connectivity.Partition) []Cut {
	if p.IsSpanning() {
		return nil
	}
	var out []Cut
	for _, comp := range p.Components {
		if c, ok := Subset(g, comp); ok {
			out = append(out, c)
		}
	}

	return out
}

// ShortCycles finds cycles of length < N among the selected edges and emits one
// subset cut per distinct node set.
//
// Edges are added in ascending id order to a spanning forest; an edge whose
// endpoints are already connected closes a fundamental cycle formed by the
// forest path between them plus the edge itself. Forests never contain
// cycles, so every fundamental cycle is simple.
//
// Complexity: O(E_all + E_sel·N) time, O(N + E_sel) space.
func ShortCycles(g *core.Graph, values []float64) []Cut {
	n := g.NodeCount()
	forest := make([][]int, n)
	parent := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	var (
		out  []Cut
		seen = make(map[string]struct{})
		i, j int
	)
	for _, id := range connectivity.SelectedEdges(g, values) {
		i, j = g.Endpoints(id)
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[ri] = rj
			forest[i] = append(forest[i], j)
			forest[j] = append(forest[j], i)
			continue
		}
		c, ok := Subset(g, forestPath(forest, i, j))
		if !ok {
			continue
		}
		key := nodeKey(c.Nodes)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	return out
}

// forestPath returns the nodes on the unique forest path from src to dst
// (inclusive), or nil when they are disconnected. Breadth-first search with
// call-local predecessor links.
func forestPath(forest [][]int, src, dst int) []int {
	prev := make([]int, len(forest))
	for k := range prev {
		prev[k] = -1
	}
	prev[src] = src
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			break
		}
		for _, w := range forest[u] {
			if prev[w] == -1 {
				prev[w] = u
				queue = append(queue, w)
			}
		}
	}
	if prev[dst] == -1 {
		return nil
	}
	var path []int
	for u := dst; ; u = prev[u] {
		path = append(path, u)
		if u == src {
			break
		}
	}

	return path
}

// nodeKey is a canonical string for a node set.
func nodeKey(nodes []int) string {
	s := append([]int(nil), nodes...)
	sort.Ints(s)
	parts := make([]string, len(s))
	for k, v := range s {
		parts[k] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
