package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/formulation"
	"github.com/katalvlaran/tspcut/heuristic"
)

func (a *app) modelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model <instance.tsp>",
		Short: "Write the MILP formulation in CPLEX LP format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			if a.v.GetBool("all") {
				dir := a.v.GetString("dir")
				if err = os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
				name := instanceName(p, args[0])
				eg, ctx := errgroup.WithContext(cmd.Context())
				for _, s := range formulation.Strategies() {
					s := s
					eg.Go(func() error {
						if err := ctx.Err(); err != nil {
							return err
						}
						path := filepath.Join(dir, name+"."+strings.ToLower(s.String())+".lp")
						_, err := a.writeModel(g, s, path)
						return err
					})
				}
				if err = eg.Wait(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d models to %s\n", len(formulation.Strategies()), dir)
				return nil
			}

			s, err := formulation.ParseStrategy(a.v.GetString("technique"))
			if err != nil {
				return err
			}
			out := a.v.GetString("out")
			m, err := a.writeModel(g, s, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s model to %s: %d columns, %d rows\n",
				s, out, len(m.Vars), len(m.Constraints))

			if start := a.v.GetString("mip-start"); start != "" {
				res, err := heuristic.Build(g, nil, heuristic.WithTimeLimit(a.v.GetDuration("time-limit")))
				if err != nil {
					return err
				}
				if err = writeStart(m, res.Tour, start); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote MIP start of cost %g to %s\n", res.Cost, start)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("technique", "t", "MTZ", "subtour elimination: MTZ, GAVISH_GRAVES or DFJ")
	f.StringP("out", "o", "Model.lp", "LP output file")
	f.Bool("all", false, "write every formulation concurrently into --dir")
	f.String("dir", ".", "output directory for --all")
	f.String("mip-start", "", "also write a heuristic MIP start (name value per line)")
	f.Duration("time-limit", 0, "local search budget for the MIP start")

	return cmd
}

// writeModel builds strategy s and writes it to path.
func (a *app) writeModel(g *core.Graph, s formulation.Strategy, path string) (*formulation.Model, error) {
	m, err := formulation.Build(g, s)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err = m.WriteLP(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return nil, err
	}
	a.log.Info("model written",
		zap.Stringer("strategy", s),
		zap.String("path", path),
		zap.Int("columns", len(m.Vars)),
		zap.Int("rows", len(m.Constraints)),
	)

	return m, nil
}

// writeStart writes the non-zero start values of tour, one "name value" per line.
func writeStart(m *formulation.Model, tour core.Tour, path string) error {
	point, err := m.StartValues(tour)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for k, v := range point {
		if v == 0 {
			continue
		}
		if _, err = w.WriteString(m.Vars[k].Name + " " + strconv.FormatFloat(v, 'g', -1, 64) + "\n"); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
