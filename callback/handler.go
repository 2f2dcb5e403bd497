package callback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspcut/connectivity"
	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/cuts"
	"github.com/katalvlaran/tspcut/heuristic"
	"github.com/katalvlaran/tspcut/recovery"
)

// Handler serves engine callbacks for one frozen graph.
type Handler struct {
	g       *core.Graph
	opts    Options
	analyze func(*core.Graph, []float64) connectivity.Partition
}

// New builds a Handler over g.
//
// Errors: core.ErrInvalidInstance for a nil graph; heuristic.ErrInvalidOptions
// for negative local-search knobs.
func New(g *core.Graph, opts ...Option) (*Handler, error) {
	if g == nil {
		return nil, fmt.Errorf("New: nil graph: %w", core.ErrInvalidInstance)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Heuristic.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Handler{g: g, opts: o, analyze: o.Analyzer.Analyze}, nil
}

// Graph returns the graph the handler serves.
func (h *Handler) Graph() *core.Graph { return h.g }

// Separate analyses an integer-feasible candidate.
//
// Accept when the selected edges form one Hamiltonian cycle. A disconnected
// point yields one cut per component T, 2 ≤ |T| < N; a spanning point with a
// node of degree > 2 yields its short cycles. The outcome is Reject when at
// least one returned cut is violated by values, Undetermined otherwise (the
// valid but unviolated cuts are still returned).
func (h *Handler) Separate(ctx context.Context, values []float64) (Separation, error) {
	start := time.Now()
	_, span := h.opts.Tracer.Start(ctx, "callback.Handler.Separate",
		trace.WithAttributes(
			attribute.Int("node_count", h.g.NodeCount()),
			attribute.Int("value_count", len(values)),
		),
	)
	defer span.End()

	p := h.analyze(h.g, values)
	if err := connectivity.Validate(p, h.g.NodeCount()); err != nil {
		err = fmt.Errorf("Separate: %w: %w", ErrInternal, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "partition invariant")
		h.opts.Logger.Error("separation partition invariant violated", zap.Error(err))
		h.opts.Metrics.observeSeparation("internal_error", 0, time.Since(start).Seconds())
		return Separation{}, err
	}

	sep := Separation{Outcome: Undetermined, Components: p.Count()}
	sep.Cuts = cuts.FromPartition(h.g, p)
	switch {
	case len(sep.Cuts) > 0:
	case connectivity.IsHamiltonianCycle(h.g, p, values):
		sep.Outcome = Accept
	case h.opts.ShortCycles:
		sep.Cuts = cuts.ShortCycles(h.g, values)
	}
	if sep.Outcome != Accept && anyViolated(sep.Cuts, values) {
		sep.Outcome = Reject
	}

	span.SetAttributes(
		attribute.String("outcome", sep.Outcome.String()),
		attribute.Int("components", sep.Components),
		attribute.Int("cuts", len(sep.Cuts)),
	)
	span.SetStatus(codes.Ok, "separated")
	h.opts.Logger.Debug("separated",
		zap.Stringer("outcome", sep.Outcome),
		zap.Int("components", sep.Components),
		zap.Int("cuts", len(sep.Cuts)),
	)
	h.opts.Metrics.observeSeparation(sep.Outcome.String(), len(sep.Cuts), time.Since(start).Seconds())

	return sep, nil
}

// ProposeHeuristic completes values into a tour and improves it with 2-opt.
// A point that already selects a Hamiltonian cycle seeds the local search
// directly. ok is false when the tour does not cost strictly less than
// incumbent (pass math.Inf(1) when there is none).
func (h *Handler) ProposeHeuristic(ctx context.Context, values []float64, incumbent float64) (Proposal, bool) {
	_, span := h.opts.Tracer.Start(ctx, "callback.Handler.ProposeHeuristic",
		trace.WithAttributes(
			attribute.Int("node_count", h.g.NodeCount()),
			attribute.Float64("incumbent", incumbent),
		),
	)
	defer span.End()

	seed := heuristic.Greedy(h.g, values)
	p := h.analyze(h.g, values)
	if connectivity.IsHamiltonianCycle(h.g, p, values) {
		if t, err := recovery.Recover(h.g, values); err == nil {
			seed = t
		}
	}

	tour, passes, timedOut, err := heuristic.TwoOpt(h.g, seed, h.opts.Heuristic)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "local search failed")
		h.opts.Logger.Warn("heuristic failed", zap.Error(err))
		h.opts.Metrics.observeProposal("failed")
		return Proposal{}, false
	}
	cost, _ := tour.Cost(h.g)
	prop := Proposal{Tour: tour, Cost: cost, Values: tour.Values(h.g), Passes: passes}

	better := cost < incumbent || math.IsNaN(incumbent)
	span.SetAttributes(
		attribute.Float64("cost", cost),
		attribute.Int("passes", len(passes)),
		attribute.Int("components", p.Count()),
		attribute.Bool("timed_out", timedOut),
		attribute.Bool("improved", better),
	)
	h.opts.Logger.Debug("heuristic tour",
		zap.Float64("cost", cost),
		zap.Float64("incumbent", incumbent),
		zap.Int("passes", len(passes)),
		zap.Bool("timed_out", timedOut),
	)
	if !better {
		h.opts.Metrics.observeProposal("not_better")
		return prop, false
	}
	h.opts.Metrics.observeProposal("improved")

	return prop, true
}

// RecoverTour decodes the final point. Failures wrap
// recovery.ErrIncompleteSolution.
func (h *Handler) RecoverTour(ctx context.Context, values []float64) (core.Tour, error) {
	_, span := h.opts.Tracer.Start(ctx, "callback.Handler.RecoverTour",
		trace.WithAttributes(attribute.Int("node_count", h.g.NodeCount())),
	)
	defer span.End()

	t, err := recovery.Recover(h.g, values)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "incomplete solution")
		h.opts.Logger.Warn("tour recovery failed", zap.Error(err))
		h.opts.Metrics.observeRecovery("incomplete")
		return nil, fmt.Errorf("RecoverTour: %w", err)
	}
	span.SetStatus(codes.Ok, "recovered")
	h.opts.Metrics.observeRecovery("ok")

	return t, nil
}

func anyViolated(cs []cuts.Cut, values []float64) bool {
	for _, c := range cs {
		if c.IsViolatedBy(values, cuts.DefaultEps) {
			return true
		}
	}

	return false
}

// IsInternal reports whether err is an invariant violation.
func IsInternal(err error) bool { return errors.Is(err, ErrInternal) }
