// Package formulation builds the integer-programming model of the symmetric
// TSP over a frozen core.Graph, in one of three subtour-elimination strategies:
//
//	Ordering   (MTZ)            directed arcs x_ij, ranks u_i,
//	                            u_i − u_j + (N−1)·x_ij ≤ N−2  for i ≠ j ≥ 1.
//	Flow       (Gavish–Graves)  directed arcs x_ij, flows f_ij ≥ 0,
//	                            node 0 emits N−1 units, every other node keeps 1,
//	                            f_ij ≤ (N−1)·x_ij.
//	SubsetCuts (DFJ)            undirected edges x_e with degree 2 per node;
//	                            subset constraints x(E(S)) ≤ |S|−1 are added
//	                            lazily by package callback.
//
// The Model is solver-neutral: variables carry bounds, kind and objective
// coefficient; constraints are sparse rows. WriteLP renders the model in CPLEX
// LP text format, StartValues turns a tour into a complete MIP start, and
// EdgeValues projects any model point onto the undirected edge vector so that
// every strategy shares one separation and recovery path.
//
// Variable layout:
//
//	SubsetCuts: index == edge id, 0 ≤ id < N(N−1)/2.
//	Ordering:   arcs [0, N(N−1)), then u_0..u_{N−1}.
//	Flow:       arcs [0, N(N−1)), then f_ij in arc order.
//
// Arc (i,j), i ≠ j, has index i·(N−1) + j − [j > i].
//
// Errors:
//
//   - ErrUnknownStrategy - strategy value or name not recognized.
//   - ErrSeedLength      - WithSeedValues vector length ≠ edge count.
//   - ErrPointLength     - a model point of the wrong length.
//   - ErrInfeasible      - Check found a violated bound or row.
//   - core.ErrInvalidInstance / core.ErrInvalidTour - bad graph or MIP start.
package formulation
