// Package heuristic derives a complete candidate tour from a (possibly
// fractional or partial) solver point, to be offered to the search engine as
// an incumbent.
//
// Pipeline:
//
//  1. Greedy completion: walk from node 0; at every step prefer unvisited
//     successors whose edge is selected in the solver point (value > 0.5),
//     otherwise any unvisited successor; among candidates take the nearest,
//     breaking ties by the smallest node id.
//  2. 2-opt local search: first-improvement segment reversal with strict
//     acceptance Δ < −Eps. One pass is a full scan over all position pairs
//     (i,k), applying every improving move met on the way. Passes repeat
//     until a pass applies no move, MaxPasses is reached, or the soft
//     TimeLimit expires.
//
// Guarantees:
//
//   - The input value vector and input tours are never mutated.
//   - Every returned tour is a permutation of 0..N-1 starting at node 0.
//   - The cost recorded after each pass never exceeds the previous one.
//
// Deterministic: no randomness; identical inputs give identical tours.
// Concurrency: all buffers are call-local; the *core.Graph is only read.
//
// Complexity: greedy O(N²); one 2-opt pass O(N²) checks plus O(N) per move.
package heuristic
