// Command tspcut builds TSP formulations and heuristic tours for TSPLIB
// instances.
//
//	tspcut model  <instance.tsp> [--technique MTZ|GAVISH_GRAVES|DFJ] [--out Model.lp] [--all --dir out/]
//	tspcut tour   <instance.tsp> [--opt-tour file | --exact] [--time-limit 600s] [--max-passes N]
//	tspcut check  <instance.tsp> <file.tour>
//
// Flags may also come from TSPCUT_* environment variables or a YAML config
// file (--config, default $HOME/.tspcut.yaml).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tspcut:", err)
		os.Exit(1)
	}
}
