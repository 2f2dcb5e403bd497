package callback

import (
	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
)

// SetAnalyzer swaps the partition function so tests can inject a broken one.
func (h *Handler) SetAnalyzer(f func(*core.Graph, []float64) connectivity.Partition) {
	h.analyze = f
}
