package callback

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/heuristic"
)

// tracerName is the instrumentation scope of Handler spans.
const tracerName = "github.com/katalvlaran/tspcut/callback"

// Options configures a Handler.
type Options struct {
	Logger      *zap.Logger
	Metrics     *Metrics
	Tracer      trace.Tracer
	Analyzer    connectivity.Analyzer
	Heuristic   heuristic.Options
	ShortCycles bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a silent Handler configuration: Nop logger, no
// metrics, the global tracer, union-find analysis, default heuristic budget and
// short-cycle separation enabled.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		Tracer:      otel.Tracer(tracerName),
		Analyzer:    connectivity.UnionFindAnalyzer,
		Heuristic:   heuristic.DefaultOptions(),
		ShortCycles: true,
	}
}

// WithLogger sets the logger; nil keeps the Nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer sets the tracer; nil keeps the global one.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithAnalyzer selects the connectivity implementation.
func WithAnalyzer(a connectivity.Analyzer) Option {
	return func(o *Options) { o.Analyzer = a }
}

// WithHeuristic sets the local-search budget of ProposeHeuristic.
func WithHeuristic(h heuristic.Options) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithShortCycleCuts toggles separation of short cycles in spanning points
// that are not tours.
func WithShortCycleCuts(on bool) Option {
	return func(o *Options) { o.ShortCycles = on }
}
