package connectivity

import "github.com/katalvlaran/tspcut/core"

// UnionFind partitions the nodes of g by the edges selected in values using a
// disjoint-set forest with path halving and union by rank.
//
// Steps:
//  1. parent[v] = v, rank[v] = 0 for every node (call-local arrays).
//  2. For each selected edge {i,j}: union(i, j).
//  3. Relabel every root to the smallest node id of its set.
//
// Complexity: the union pass is O(N + E_sel·α(N)). Reading the dense value
// vector adds O(E_all) = O(N²) to find the selected edges; that scan is
// inherent to the per-edge input, not to the analysis. O(N) space.
func UnionFind(g *core.Graph, values []float64) Partition {
	n := g.NodeCount()
	parent := make([]int, n)
	rank := make([]int, n)

	var v int
	for v = 0; v < n; v++ {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(u, w int) {
		ru, rw := find(u), find(w)
		if ru == rw {
			return
		}
		// Attach the shallower tree under the deeper one.
		switch {
		case rank[ru] < rank[rw]:
			parent[ru] = rw
		case rank[ru] > rank[rw]:
			parent[rw] = ru
		default:
			parent[rw] = ru
			rank[ru]++
		}
	}

	var (
		id   int
		m    = g.EdgeCount()
		i, j int
	)
	for id = 0; id < m; id++ {
		if !Selected(valueAt(values, id)) {
			continue
		}
		i, j = g.Endpoints(id)
		union(i, j)
	}

	// Relabel roots to the smallest member; ascending scan meets it first.
	smallest := make([]int, n)
	for v = 0; v < n; v++ {
		smallest[v] = -1
	}
	rep := make([]int, n)
	var r int
	for v = 0; v < n; v++ {
		r = find(v)
		if smallest[r] == -1 {
			smallest[r] = v
		}
		rep[v] = smallest[r]
	}

	return fromRepresentatives(rep)
}

// fromRepresentatives groups nodes by representative. rep must satisfy
// rep[i] ≤ i and rep[rep[i]] == rep[i], which both analyzers guarantee.
//
// Complexity: O(N).
func fromRepresentatives(rep []int) Partition {
	n := len(rep)
	slot := make([]int, n) // representative → component index
	comps := make([][]int, 0, 1)

	var v int
	for v = 0; v < n; v++ {
		if rep[v] == v {
			slot[v] = len(comps)
			comps = append(comps, []int{v})
			continue
		}
		comps[slot[rep[v]]] = append(comps[slot[rep[v]]], v)
	}

	return Partition{Rep: rep, Components: comps}
}
