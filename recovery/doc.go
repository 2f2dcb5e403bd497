// Package recovery reconstructs the tour encoded by an integral solver point.
//
// Recover walks from node 0: at every step it moves to the smallest-id
// neighbour whose edge is selected (value > 0.5) and which is not the node it
// came from, until it returns to 0. The walk fails with ErrIncompleteSolution
// when it hits a dead end, closes before visiting every node, revisits a node,
// or when the point selects more than the N edges of the walked cycle.
//
// Recovery is meant for accepted points (see package callback). It never
// repairs a point; use package heuristic for that.
package recovery
