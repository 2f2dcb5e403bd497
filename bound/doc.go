// Package bound computes lower bounds and exact optima for small symmetric
// instances, used to judge the tours produced by the heuristic.
//
// OneTree is the Held–Karp Lagrangian 1-tree bound rooted at node 0:
//
//	L(π) = cost_c'(T(π)) − 2·Σπ_i,   c'_ij = c_ij + π_i + π_j
//
// where T(π) is an MST over V\{0} plus the two cheapest edges at node 0.
// Multipliers move by subgradient steps s_i = deg_T(i) − 2. Every L(π) is a
// valid lower bound on the optimal tour; the best one seen is returned.
//
// Exact is the Held–Karp dynamic programme over subsets, limited to
// MaxExactNodes nodes.
//
// Deterministic: no randomness; ties break by node index.
package bound
