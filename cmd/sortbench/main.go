// Package main provides the CLI entry point for sortbench, a benchmark
// of recursive and iterative quicksort.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/weiihann/sortbench/config"
	"github.com/weiihann/sortbench/harness"
	"github.com/weiihann/sortbench/report"
	"github.com/weiihann/sortbench/workload"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(logger, level)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Recursive vs iterative quicksort benchmark",
		Long: `Sortbench sorts the same random datasets with a recursive and an
iterative quicksort, records operation counts and elapsed times for every
trial, and reports the mean and coefficient of variation per dataset size.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every trial")

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newReportCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		configPath  string
		sizes       []int
		trials      int
		warmup      int
		seed        int64
		output      string
		yes         bool
		outputJSON  bool
		metricsFile string
	)

	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the quicksort benchmark",
		Long: `Generate random datasets at every configured size, sort each one with
both quicksort variants, write the raw results file and print a summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := defaults
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("sizes") {
				cfg.Sizes = sizes
			}
			if flags.Changed("trials") {
				cfg.Trials = trials
			}
			if flags.Changed("warmup") {
				cfg.Warmup = warmup
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("output") {
				cfg.Output = output
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), "Proceed to tests?")
				if err != nil {
					return fmt.Errorf("prompt: %w", err)
				}

				if !ok {
					logger.InfoContext(cmd.Context(), "benchmark skipped")
					return nil
				}
			}

			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout(), cfg, runOptions{
				outputJSON:  outputJSON,
				metricsFile: metricsFile,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "",
		"Path to a YAML config file")
	flags.IntSliceVar(&sizes, "sizes", defaults.Sizes,
		"Dataset sizes to benchmark")
	flags.IntVar(&trials, "trials", defaults.Trials,
		"Datasets sorted per size")
	flags.IntVar(&warmup, "warmup", defaults.Warmup,
		"Throwaway sorts before timing starts")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed (0 = use current time)")
	flags.StringVar(&output, "output", defaults.Output,
		"Raw results file")
	flags.BoolVarP(&yes, "yes", "y", false,
		"Skip the confirmation prompt")
	flags.BoolVar(&outputJSON, "json", false,
		"Output the summary as JSON instead of a table")
	flags.StringVar(&metricsFile, "metrics-file", "",
		"Write Prometheus metrics of the run to this file")

	return cmd
}

func newReportCmd(logger *slog.Logger) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "report <raw-results-file>",
		Short: "Summarize a raw results file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open results: %w", err)
			}
			defer f.Close()

			res, err := harness.ParseRaw(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			logger.InfoContext(cmd.Context(), "generating report",
				slog.String("path", args[0]),
				slog.Int("sizes", len(res.Sizes)),
				slog.Int("trials", res.Trials),
			)

			return writeSummary(cmd.OutOrStdout(), res, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false,
		"Output the summary as JSON instead of a table")

	return cmd
}

type runOptions struct {
	outputJSON  bool
	metricsFile string
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg config.Config,
	opts runOptions,
) error {
	gen := workload.NewGenerator(workload.Config{Seed: cfg.Seed})

	logger.InfoContext(ctx, "starting benchmark",
		slog.Any("sizes", cfg.Sizes),
		slog.Int("trials", cfg.Trials),
		slog.Int("warmup", cfg.Warmup),
		slog.Int64("seed", gen.Seed()),
	)

	reg := prometheus.NewRegistry()
	runner := harness.NewRunner(gen, harness.NewMetrics(reg), logger)

	res, err := runner.Run(ctx, harness.RunConfig{
		Sizes:  cfg.Sizes,
		Trials: cfg.Trials,
		Warmup: cfg.Warmup,
	})
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	if err := writeRawFile(cfg.Output, res); err != nil {
		return err
	}

	logger.InfoContext(ctx, "raw results written", slog.String("path", cfg.Output))

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if err := writeSummary(out, res, opts.outputJSON); err != nil {
		return err
	}

	logger.InfoContext(ctx, "benchmark complete", slog.String("run_id", res.RunID))

	return nil
}

func writeRawFile(path string, res *harness.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}

	if err := harness.WriteRaw(f, res); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close results file: %w", err)
	}

	return nil
}

func writeSummary(w io.Writer, res *harness.Results, asJSON bool) error {
	summary, err := report.Summarize(res)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	switch {
	case asJSON:
		err = report.GenerateJSON(w, summary)
	case isTerminal(w):
		err = report.Render(w, summary)
	default:
		err = report.Generate(w, summary)
	}

	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	return nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
