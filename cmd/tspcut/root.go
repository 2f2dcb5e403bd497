package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/tspcut/callback"
	"github.com/katalvlaran/tspcut/core"
	"github.com/katalvlaran/tspcut/tsplib"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.Logger
	reg     *prometheus.Registry
	metrics *callback.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "tspcut",
		Short:         "Subtour elimination toolkit for the symmetric TSP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = a.log.Sync() }()
			if !a.v.GetBool("metrics") {
				return nil
			}
			return a.dumpMetrics(cmd)
		},
	}

	root.SetGlobalNormalizationFunc(normalizeFlag)
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.tspcut.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.Bool("metrics", false, "print Prometheus metrics when the command ends")

	root.AddCommand(a.modelCmd(), a.tourCmd(), a.checkCmd())

	return root
}

// init binds flags, environment and config file, then builds the logger and
// the metrics registry.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.bind(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("TSPCUT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".tspcut.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			a.v.SetConfigFile(path)
			if err = a.v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := zap.NewProductionConfig()
	if a.v.GetBool("verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log.Named("tspcut")

	a.reg = prometheus.NewRegistry()
	a.metrics = callback.NewMetrics(a.reg)

	return nil
}

// bind makes every flag of fs a viper key of the same name.
func (a *app) bind(fs *pflag.FlagSet) error {
	if err := a.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

// normalizeFlag accepts --time_limit for --time-limit, matching the
// underscore spelling of the environment variables.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func (a *app) dumpMetrics(cmd *cobra.Command) error {
	families, err := a.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// loadGraph reads a TSPLIB file and freezes it.
func (a *app) loadGraph(path string) (*tsplib.Problem, *core.Graph, error) {
	p, err := tsplib.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := core.NewGraph(p)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("instance loaded",
		zap.String("name", p.Name),
		zap.Int("nodes", g.NodeCount()),
		zap.String("weights", p.WeightType),
	)

	return p, g, nil
}

// handler builds the callback handler wired to the app's logger and metrics.
func (a *app) handler(g *core.Graph, opts ...callback.Option) (*callback.Handler, error) {
	opts = append([]callback.Option{
		callback.WithLogger(a.log),
		callback.WithMetrics(a.metrics),
	}, opts...)

	return callback.New(g, opts...)
}

// instanceName returns the TSPLIB NAME, or the file stem when it is empty.
func instanceName(p *tsplib.Problem, path string) string {
	if p.Name != "" {
		return p.Name
	}

	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

var errInfeasible = errors.New("tour is not a single Hamiltonian cycle")
