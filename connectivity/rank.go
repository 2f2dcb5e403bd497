package connectivity

import "github.com/katalvlaran/tspcut/core"

// RankPropagation partitions the nodes of g by rank flooding: every node starts
// unvisited with its own rank; the smallest unvisited node floods its rank
// across every selected edge until no reachable rank can be lowered further.
//
// Scanning unvisited nodes in ascending order means the first node of every
// component is its minimum, so each node is labelled exactly once and the
// result equals UnionFind's partition.
//
// Complexity: the flooding pass is O(N + E_sel). Building the selected
// adjacency scans the dense value vector, O(E_all) = O(N²). O(N + E_sel) space.
func RankPropagation(g *core.Graph, values []float64) Partition {
	n := g.NodeCount()
	adj := selectedAdjacency(g, values)

	const unvisited = -1
	rank := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		rank[v] = unvisited
	}

	stack := make([]int, 0, n)
	var (
		start, u, w int
	)
	for start = 0; start < n; start++ {
		if rank[start] != unvisited {
			continue
		}
		rank[start] = start
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w = range adj[u] {
				if rank[w] == unvisited {
					rank[w] = start
					stack = append(stack, w)
				}
			}
		}
	}

	return fromRepresentatives(rank)
}

// selectedAdjacency builds per-node neighbour lists over selected edges.
// Neighbours appear in ascending edge-id order.
func selectedAdjacency(g *core.Graph, values []float64) [][]int {
	n := g.NodeCount()
	adj := make([][]int, n)

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
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}

	return adj
}
