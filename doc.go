// Package tspcut is the subtour-elimination and cut-separation engine of a
// branch-and-cut solver for the symmetric Travelling Salesman Problem.
//
// A MIP engine solves the degree-constrained relaxation and hands every
// candidate point x ∈ [0,1]^E back to tspcut, which answers with one of:
//
//   - accept       — x selects a single Hamiltonian cycle;
//   - reject+cuts  — x violates at least one subtour-elimination constraint
//     Σ_{e ⊆ S} x_e ≤ |S| − 1, returned for the engine to add lazily;
//   - undetermined — x is neither, so the engine should branch.
//
// Alongside separation it builds candidate tours (greedy completion + 2-opt),
// recovers the tour from an integral point and emits the compact models
// (MTZ, Gavish–Graves, DFJ) in CPLEX LP format.
//
// Packages:
//
//	core/         — Instance, Graph (edge ids), Tour
//	connectivity/ — component partition of the selected-edge subgraph
//	cuts/         — subtour-elimination cuts built from a partition
//	heuristic/    — greedy completion and 2-opt local search
//	recovery/     — tour reconstruction from an integral point
//	formulation/  — MTZ / Gavish–Graves / DFJ models, LP writer, MIP starts
//	callback/     — the solver-facing Handler with logging, metrics, tracing
//	bound/        — 1-tree lower bound and exact Held–Karp for small N
//	tsplib/       — TSPLIB instance and tour readers
//	cmd/tspcut    — command-line front end
//
// Quick example:
//
//	g, _ := core.NewGraph(core.Points{Coords: nodes})
//	h, _ := callback.New(g, callback.WithLogger(log))
//	sep, _ := h.Separate(ctx, x)
//	if sep.Outcome == callback.Reject {
//		for _, c := range sep.Cuts { engine.AddLazy(c) }
//	}
//
//	go install github.com/katalvlaran/tspcut/cmd/tspcut@latest
package tspcut
