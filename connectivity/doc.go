// Package connectivity partitions the nodes of a core.Graph into connected
// components of the subgraph formed by the currently selected edges.
//
// Input is the solver's value vector x indexed by edge id. An edge is
// selected when its value is finite and lies in (0.5, 1+1e-6]; NaN, ±Inf,
// negative and over-range values count as not selected, as do entries
// missing from a short vector. The analyzer never writes to x.
//
// Two equivalent analyzers are provided:
//
//   - UnionFind: disjoint-set forest with path halving and union by rank.
//   - RankPropagation: every node starts with its own rank; the smallest
//     unvisited rank is flooded through the selected adjacency until no rank
//     changes (explicit stack, each node labelled once).
//
// Both return the same Partition for the same input: Rep[i] is the smallest
// node id in i's component, and Components lists components ordered by
// representative with members ascending. That canonical form is what makes
// repeated and concurrent calls produce identical results.
//
// Concurrency: every call allocates its own scratch (parent/rank arrays,
// adjacency, stack); the only shared input is the read-only *core.Graph.
//
// Complexity: O(E_all) to scan the value vector, plus O(N + E_sel·α(N)) for
// union-find or O(N + E_sel) for rank propagation, where E_sel is the number
// of selected edges.
package connectivity
