package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspcut/bound"
	"github.com/katalvlaran/tspcut/callback"
	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/heuristic"
	"github.com/katalvlaran/tspcut/tsplib"
)

func (a *app) tourCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tour <instance.tsp>",
		Short: "Build a greedy + 2-opt tour and compare it with the optimum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			h, err := a.handler(g, callback.WithHeuristic(heuristic.NewOptions(
				heuristic.WithMaxPasses(a.v.GetInt("max-passes")),
				heuristic.WithTimeLimit(a.v.GetDuration("time-limit")),
			)))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			prop, ok := h.ProposeHeuristic(ctx, nil, math.Inf(1))
			if !ok {
				return errors.New("heuristic produced no tour")
			}
			sep, err := h.Separate(ctx, prop.Values)
			if err != nil {
				return err
			}
			if sep.Outcome != callback.Accept {
				return fmt.Errorf("%v: %w", prop.Tour, errInfeasible)
			}

			out := cmd.OutOrStdout()
			name := instanceName(p, args[0])
			fmt.Fprintf(out, "Instance: %s (%d nodes)\n", name, g.NodeCount())
			fmt.Fprintf(out, "Tour: %v\n", prop.Tour)
			fmt.Fprintf(out, "Cost: %g\n", prop.Cost)
			fmt.Fprintf(out, "2-opt passes: %d\n", len(prop.Passes))

			cfg := bound.DefaultConfig()
			cfg.UB = prop.Cost
			cfg.MaxIter = a.v.GetInt("bound-iters")
			lb, err := bound.OneTree(g, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Lower bound: %g\n", lb.Bound)

			opt, found, err := a.optimum(g, name)
			if err != nil || !found {
				return err
			}
			gap := core.Gap(prop.Cost, opt)
			fmt.Fprintf(out, "Optimal: %g\n", opt)
			fmt.Fprintf(out, "Gap: %.4f%%\n", gap)
			a.log.Info("tour compared", zap.Float64("cost", prop.Cost), zap.Float64("optimal", opt), zap.Float64("gap", gap))

			return nil
		},
	}

	f := cmd.Flags()
	f.String("opt-tour", "", "optimal tour file (default Tours/<name>.opt.tour when present)")
	f.Duration("time-limit", 0, "soft local search budget, 0 for none")
	f.Int("max-passes", 0, "2-opt pass budget, 0 for local optimum")
	f.Int("bound-iters", 32, "subgradient iterations of the 1-tree bound")
	f.Bool("exact", false, "solve instances up to 16 nodes exactly when no optimal tour is given")

	return cmd
}

// optimum returns the reference optimum from --opt-tour, Tours/<name>.opt.tour
// or, with --exact, from the Held–Karp recursion.
func (a *app) optimum(g *core.Graph, name string) (float64, bool, error) {
	optPath := a.v.GetString("opt-tour")
	if optPath == "" {
		optPath = filepath.Join("Tours", name+".opt.tour")
		if _, err := os.Stat(optPath); err != nil {
			optPath = ""
		}
	}
	if optPath != "" {
		tf, err := tsplib.ReadTourFile(optPath)
		if err != nil {
			return 0, false, err
		}
		opt, err := tf.Tour.Cost(g)
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", optPath, err)
		}

		return opt, true, nil
	}
	if !a.v.GetBool("exact") {
		return 0, false, nil
	}
	_, opt, err := bound.Exact(g)
	if err != nil {
		return 0, false, err
	}

	return opt, true, nil
}
