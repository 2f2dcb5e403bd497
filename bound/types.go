package bound

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrTooLarge is returned by Exact above MaxExactNodes nodes.
	ErrTooLarge = errors.New("bound: instance too large for exact search")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("bound: nil graph")
)

// MaxExactNodes caps Exact; the table holds N·2^N entries.
const MaxExactNodes = 16

// Config controls the subgradient loop of OneTree.
type Config struct {
	// MaxIter is the number of subgradient iterations (values < 1 mean 1).
	MaxIter int

	// Alpha ∈ (0, 2) scales the step; out-of-range values fall back to 0.9.
	Alpha float64

	// UB is an incumbent tour cost driving t = α·(UB−L)/‖s‖².
	// +Inf or a non-positive value selects the schedule t = α/(1+iter).
	UB float64

	// TimeLimit is a soft wall-clock budget; 0 disables it.
	TimeLimit time.Duration
}

// DefaultConfig returns 32 iterations, α = 0.9 and no incumbent.
func DefaultConfig() Config {
	return Config{
		MaxIter: 32,
		Alpha:   0.9,
		UB:      math.Inf(1),
	}
}

// Result is the outcome of OneTree.
type Result struct {
	// Bound is the best L(π) seen, rounded to 1e-9.
	Bound float64

	// Degrees are the node degrees of the last 1-tree built.
	Degrees []int

	// Iterations counts the 1-trees built.
	Iterations int

	// Tour is set when a 1-tree had every degree equal to 2; Bound is then optimal.
	Tour bool

	// TimedOut is set when TimeLimit stopped the loop.
	TimedOut bool
}

func round1e9(x float64) float64 { return math.Round(x*1e9) / 1e9 }
