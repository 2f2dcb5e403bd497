// Package core defines the frozen graph model shared by every tspcut component:
// the Instance abstraction consumed from the outside world, the complete
// undirected Graph built from it, and the Tour query result.
//
// The Graph G = (V,E) is always the complete graph on N ≥ 3 nodes:
//
//   - Nodes are identified by integers 0..N-1 (optionally with a 2D position).
//   - Every unordered pair {i,j}, i≠j, is an Edge with a unique integer ID and
//     a non-negative, finite, symmetric weight.
//   - Edge IDs follow a row-major upper-triangular layout, so EdgeID(i,j) and
//     Endpoints(id) are O(1) and EdgeID(i,j) == EdgeID(j,i).
//
// Edge layout for N = 5:
//
//	      j: 1  2  3  4
//	i = 0:   0  1  2  3
//	i = 1:      4  5  6
//	i = 2:         7  8
//	i = 3:            9
//
// Lifecycle:
//
//	NewGraph validates the Instance once (N, NaN/Inf, negativity, symmetry),
//	prefetches all costs into a dense buffer and never changes afterwards.
//	A *Graph is therefore safe to share between goroutines without locking;
//	separation and heuristic callbacks running on different search nodes read
//	it concurrently.
//
// Tours:
//
//	A Tour is an open permutation of 0..N-1 describing a Hamiltonian cycle;
//	the closing edge back to the first node is implicit. Tours are query
//	results only and are never stored by the graph.
//
// Errors:
//
//	ErrInvalidInstance – nil instance, N < 3, NaN/±Inf/negative cost, asymmetry.
//	ErrInvalidTour     – wrong length, out-of-range or repeated node.
package core
