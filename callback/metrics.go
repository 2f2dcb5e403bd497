package callback

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a Handler. A nil *Metrics records
// nothing.
type Metrics struct {
	separations *prometheus.CounterVec
	cuts        prometheus.Counter
	latency     prometheus.Histogram
	proposals   *prometheus.CounterVec
	recoveries  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// Labels: "accept", "reject", "undetermined", "internal_error"
		separations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tspcut_separations_total",
			Help: "Separation calls by outcome",
		}, []string{"outcome"}),

		cuts: f.NewCounter(prometheus.CounterOpts{
			Name: "tspcut_cuts_emitted_total",
			Help: "Subset elimination cuts returned to the engine",
		}),

		latency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tspcut_separation_duration_seconds",
			Help:    "Separation call duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),

		// Labels: "improved", "not_better", "failed"
		proposals: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tspcut_heuristic_proposals_total",
			Help: "Heuristic calls by result",
		}, []string{"result"}),

		// Labels: "ok", "incomplete"
		recoveries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tspcut_recoveries_total",
			Help: "Tour recoveries by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeSeparation(outcome string, cuts int, seconds float64) {
	if m == nil {
		return
	}
	m.separations.WithLabelValues(outcome).Inc()
	m.cuts.Add(float64(cuts))
	m.latency.Observe(seconds)
}

func (m *Metrics) observeProposal(result string) {
	if m == nil {
		return
	}
	m.proposals.WithLabelValues(result).Inc()
}

func (m *Metrics) observeRecovery(result string) {
	if m == nil {
		return
	}
	m.recoveries.WithLabelValues(result).Inc()
}
