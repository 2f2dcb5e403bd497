package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspcut/tsplib"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <instance.tsp> <file.tour>",
		Short: "Validate a tour file against an instance and print its cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			tf, err := tsplib.ReadTourFile(args[1])
			if err != nil {
				return err
			}
			if err = tf.Tour.Validate(g.NodeCount()); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			h, err := a.handler(g)
			if err != nil {
				return err
			}
			t, err := h.RecoverTour(cmd.Context(), tf.Tour.Values(g))
			if err != nil {
				return fmt.Errorf("%s: %w: %w", args[1], errInfeasible, err)
			}
			cost, err := t.Cost(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tour: %v\n", t)
			fmt.Fprintf(out, "Cost: %g\n", cost)
			fmt.Fprintln(out, "Feasible: true")

			return nil
		},
	}
}
