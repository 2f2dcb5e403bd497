// Package callback is the narrow contract between a mixed-integer search
// engine and the TSP separation core. A Handler is built once per graph and
// exposes the three entry points an engine calls during and after search:
//
//	Separate          at integer-feasible candidates: accept the point as a
//	                  single Hamiltonian cycle, or reject it with subset cuts.
//	ProposeHeuristic  at relaxation nodes: complete the point into a tour and
//	                  offer it when it beats the incumbent.
//	RecoverTour       once after search: decode the final point into a tour.
//
// Concurrency: a Handler is immutable after New. Every call keeps its state on
// the stack, so engines may invoke any entry point from many worker goroutines
// at once. Cuts are self-contained; the Handler keeps no cut pool.
//
// Errors: Separate and ProposeHeuristic never fail on malformed values (NaN,
// out-of-range, short vectors are treated as not selected). Separate returns
// ErrInternal only when the connectivity partition breaks its own invariant.
// RecoverTour reports recovery.ErrIncompleteSolution unchanged.
//
// Observability: optional zap logger, Prometheus collectors (NewMetrics) and an
// OpenTelemetry tracer. All default to no-ops.
package callback
