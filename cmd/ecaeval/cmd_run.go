package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"eca-density/internal/automaton"
	"eca-density/internal/config"
	"eca-density/internal/core"
	"eca-density/internal/eval"
	"eca-density/internal/logging"
	"eca-density/internal/store"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		ruleParams  map[string]string
		out         string
		formats     []string
		sqlitePath  string
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "run [rule...]",
		Short: "Evaluate rules over seeded random configurations",
		Long: `Run evaluates each named rule (default: gkl majority) on the configured
number of seeded trials and writes one report per rule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("out") {
				cfg.Output.Dir = out
			}
			if flags.Changed("format") {
				cfg.Output.Formats = formats
			}
			if flags.Changed("sqlite") {
				cfg.Output.SQLitePath = sqlitePath
			}
			if flags.Changed("metrics-file") {
				cfg.Output.MetricsFile = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"gkl", "majority"}
			}
			return runEvaluations(cmd.Context(), cfg, args, ruleParams, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringToStringVar(&ruleParams, "param", nil, "rule parameter key=value (repeatable)")
	cmd.Flags().StringVar(&out, "out", "", "output directory for report files")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "report formats: json, yaml")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also record runs in this SQLite database")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this text file")
	return cmd
}

func runEvaluations(ctx context.Context, cfg *config.Config, names []string, ruleParams map[string]string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewLogger(cfg.Logging.Level, stderr)

	persister, closeFn, err := buildPersister(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	h, err := eval.NewHarness(cfg.Params(), eval.WithLogger(logger), eval.WithPersister(persister))
	if err != nil {
		return err
	}

	e := cfg.Experiment
	for _, name := range names {
		r, err := core.NewRule(name, e.Arity, ruleParams)
		if err != nil {
			return err
		}
		a, err := automaton.New(e.Size, e.Arity)
		if err != nil {
			return err
		}
		if err := a.BindRule(r); err != nil {
			return err
		}
		report, err := h.Run(ctx, name, a)
		if err != nil {
			return err
		}
		s := report.Summary
		fmt.Fprintf(stdout, "%-12s accuracy=%.4f mean_convergence_time=%.2f converged=%d/%d\n",
			name, s.Accuracy, s.MeanConvergenceTime, s.Converged, s.Trials)
	}

	if cfg.Output.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.Output.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Info("metrics written", "path", cfg.Output.MetricsFile)
	}
	return nil
}

func buildPersister(ctx context.Context, cfg *config.Config) (eval.Persister, func(), error) {
	var multi store.Multi
	closeFn := func() {}
	for _, format := range cfg.Output.Formats {
		fs, err := store.NewFileStore(cfg.Output.Dir, format)
		if err != nil {
			return nil, closeFn, err
		}
		multi = append(multi, fs)
	}
	if cfg.Output.SQLitePath != "" {
		path := cfg.Output.SQLitePath
		if !filepath.IsAbs(path) && cfg.Output.Dir != "" {
			path = filepath.Join(cfg.Output.Dir, path)
		}
		db, err := store.NewSQLiteStore(ctx, path)
		if err != nil {
			return nil, closeFn, err
		}
		multi = append(multi, db)
		closeFn = func() { db.Close() }
	}
	return multi, closeFn, nil
}
