package callback

import (
	"errors"

	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/cuts"
)

// ErrInternal marks an invariant violation inside the separation core. It is
// fatal for the search: the engine should abort rather than retry.
var ErrInternal = errors.New("callback: internal error")

// Outcome is the verdict of Separate.
type Outcome int

const (
	// Accept: the point is a single Hamiltonian cycle; no cuts.
	Accept Outcome = iota

	// Reject: the point is cut off by at least one returned cut.
	Reject

	// Undetermined: the point is not a tour but no subset cut is violated
	// by it, e.g. a Hamiltonian path or isolated nodes only. The engine's
	// degree rows decide the point.
	Undetermined
)

// String returns the metric label of o.
func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "undetermined"
	}
}

// Separation is the result of one Separate call.
type Separation struct {
	Outcome    Outcome
	Cuts       []cuts.Cut
	Components int
}

// Proposal is a heuristic incumbent candidate.
type Proposal struct {
	Tour   core.Tour
	Cost   float64
	Values []float64 // characteristic edge vector of Tour
	Passes []float64 // cost after each local-search pass
}
