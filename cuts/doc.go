// Package cuts turns disconnected structure found by package connectivity
// into subtour-elimination inequalities.
//
// For a node subset T with 2 ≤ |T| < N the subset cut is
//
//	Σ_{i<j, i,j ∈ T} x_{ij} ≤ |T| − 1
//
// Every tour satisfies it (a Hamiltonian cycle restricted to T is a union of
// paths, at most |T|−1 edges), while an assignment whose selected edges close
// a cycle inside T violates it.
//
// Two generators are provided:
//
//   - FromPartition: one cut per component of a non-spanning partition. Each
//     disconnected piece is bounded individually, not only the complement.
//   - ShortCycles: for a spanning selection that is not a Hamiltonian cycle
//     (relaxed values letting a node carry more than two edges), one cut per
//     distinct cycle shorter than N found while growing a spanning forest.
//
// Cuts are self-contained values: this package keeps no pool and assigns no
// lifetime; the caller hands them to the search engine, which decides whether
// they are local or global. All scratch is call-scoped, so generators are safe
// to call concurrently over a shared read-only *core.Graph.
package cuts
