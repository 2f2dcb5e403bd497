package heuristic

import (
	"errors"
	"time"

	"github.com/katalvlaran/tspcut/core"
)

// ErrInvalidOptions indicates a negative Eps, MaxPasses or TimeLimit.
var ErrInvalidOptions = errors.New("heuristic: invalid options")

// Defaults used by DefaultOptions.
const (
	// DefaultMaxPasses bounds the local search when called from a solver callback.
	DefaultMaxPasses = 64

	// DefaultEps is the strict improvement threshold for accepting a move.
	DefaultEps = 1e-9
)

// Options configures the local search.
type Options struct {
	// MaxPasses caps the number of 2-opt passes; 0 means until local optimum.
	MaxPasses int

	// Eps is the acceptance tolerance: a move is applied only if Δ < −Eps.
	Eps float64

	// TimeLimit is a soft wall-clock budget for the local search; 0 disables it.
	TimeLimit time.Duration
}

// Option configures Options.
type Option func(*Options)

// WithMaxPasses sets the pass budget (0 = unlimited).
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.MaxPasses = n }
}

// WithEps sets the improvement tolerance.
func WithEps(eps float64) Option {
	return func(o *Options) { o.Eps = eps }
}

// WithTimeLimit sets the soft time budget (0 = none).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// DefaultOptions returns MaxPasses = DefaultMaxPasses, Eps = DefaultEps and no
// time limit.
func DefaultOptions() Options {
	return Options{
		MaxPasses: DefaultMaxPasses,
		Eps:       DefaultEps,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Validate rejects negative knobs with ErrInvalidOptions.
func (o Options) Validate() error {
	if o.MaxPasses < 0 || o.Eps < 0 || o.TimeLimit < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// Result is the outcome of Build.
type Result struct {
	// Tour is the improved tour, starting at node 0.
	Tour core.Tour

	// Cost is the closed-cycle cost of Tour, rounded to 1e-9.
	Cost float64

	// Initial is the cost of the greedy tour before local search.
	Initial float64

	// Passes holds the cost after each completed 2-opt pass.
	Passes []float64

	// TimedOut is set when TimeLimit stopped the local search early.
	TimedOut bool
}
