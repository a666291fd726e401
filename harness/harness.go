package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/weiihann/sortbench/quicksort"
	"github.com/weiihann/sortbench/workload"
)

// ErrInvalidConfig indicates an unusable RunConfig.
var ErrInvalidConfig = errors.New("invalid run configuration")

// RunConfig holds parameters for a single benchmark run.
type RunConfig struct {
	Sizes  []int
	Trials int
	// Warmup is the number of throwaway sorts executed before the first
	// timed trial.
	Warmup int
}

// Validate checks that the configuration can be run.
func (c RunConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no dataset sizes", ErrInvalidConfig)
	}

	seen := make(map[int]bool, len(c.Sizes))
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: size %d: %w", ErrInvalidConfig, size, workload.ErrInvalidSize)
		}

		if seen[size] {
			return fmt.Errorf("%w: duplicate dataset size %d", ErrInvalidConfig, size)
		}

		seen[size] = true
	}

	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}

	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must be non-negative, got %d", ErrInvalidConfig, c.Warmup)
	}

	return nil
}

// Runner drives both quicksort variants over generated datasets.
type Runner struct {
	Generator *workload.Generator
	Metrics   *Metrics
	Logger    *slog.Logger
	// NewSorter builds the sorter for each variant at the start of a run.
	NewSorter func(quicksort.Variant) (quicksort.Sorter, error)
}

// NewRunner creates a Runner using quicksort.New. metrics may be nil.
func NewRunner(gen *workload.Generator, metrics *Metrics, logger *slog.Logger) *Runner {
	return &Runner{
		Generator: gen,
		Metrics:   metrics,
		Logger:    logger,
		NewSorter: quicksort.New,
	}
}

// trialSorter pairs a sorter with the table it records into.
type trialSorter struct {
	sorter quicksort.Sorter
	table  *Table
}

// Run executes cfg.Trials trials at every size for both variants. A sort
// that leaves its data unsorted is logged and its sample is still
// recorded; it does not stop the run.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Results{
		RunID:     uuid.NewString(),
		Sizes:     slices.Clone(cfg.Sizes),
		Trials:    cfg.Trials,
		Recursive: newTable(quicksort.Recursive, cfg.Sizes, cfg.Trials),
		Iterative: newTable(quicksort.Iterative, cfg.Sizes, cfg.Trials),
	}

	logger := r.Logger.With(slog.String("run_id", res.RunID))

	newSorter := r.NewSorter
	if newSorter == nil {
		newSorter = quicksort.New
	}

	sorters := make([]trialSorter, 0, len(quicksort.KnownVariants()))
	for _, v := range quicksort.KnownVariants() {
		sorter, err := newSorter(v)
		if err != nil {
			return nil, fmt.Errorf("create %s sorter: %w", v, err)
		}

		sorters = append(sorters, trialSorter{sorter: sorter, table: res.table(v)})
	}

	logger.InfoContext(ctx, "warming up", slog.Int("iterations", cfg.Warmup))
	WarmUp(cfg.Warmup)

	runStart := time.Now()

	for _, size := range cfg.Sizes {
		sizeStart := time.Now()

		for trial := 0; trial < cfg.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("run interrupted at size %d trial %d: %w", size, trial, err)
			}

			data, err := r.Generator.Generate(size)
			if err != nil {
				return nil, fmt.Errorf("generate dataset of size %d: %w", size, err)
			}

			for _, ts := range sorters {
				if err := r.runTrial(ctx, logger, ts, data, trial); err != nil {
					return nil, err
				}
			}
		}

		logger.InfoContext(ctx, "size complete",
			slog.Int("size", size),
			slog.Int("trials", cfg.Trials),
			slog.Duration("wall_time", time.Since(sizeStart)),
		)
	}

	logger.InfoContext(ctx, "run complete",
		slog.Int("sizes", len(cfg.Sizes)),
		slog.Duration("wall_time", time.Since(runStart)),
	)

	return res, nil
}

func (r *Runner) runTrial(
	ctx context.Context,
	logger *slog.Logger,
	ts trialSorter,
	data []int,
	trial int,
) error {
	variant := ts.sorter.Variant()
	size := len(data)
	work := slices.Clone(data)

	sortErr := ts.sorter.Sort(work)

	var unsorted *quicksort.UnsortedError
	if sortErr != nil && !errors.As(sortErr, &unsorted) {
		return fmt.Errorf("%s sort at size %d trial %d: %w", variant, size, trial, sortErr)
	}

	if unsorted != nil {
		logger.ErrorContext(ctx, "data failed to sort",
			slog.String("variant", string(variant)),
			slog.Int("size", size),
			slog.Int("trial", trial),
			slog.Int("inversion_index", unsorted.Index),
			slog.Any("data", unsorted.Data),
		)
	}

	sample := Sample{
		Size:    size,
		Trial:   trial,
		Count:   ts.sorter.Count(),
		Elapsed: ts.sorter.Elapsed(),
	}

	ts.table.add(sample)
	r.Metrics.observe(variant, sample, unsorted == nil)

	logger.DebugContext(ctx, "trial recorded",
		slog.String("variant", string(variant)),
		slog.Int("size", size),
		slog.Int("trial", trial),
		slog.Int("count", sample.Count),
		slog.Duration("elapsed", sample.Elapsed),
	)

	ts.sorter.Reset()

	return nil
}

// warmupData is a small fixed input for WarmUp.
var warmupData = [...]int{9, 3, 7, 1, 8, 2, 6, 4}

// WarmUp executes n throwaway sorts of a tiny fixed input so the first
// timed trial does not pay for cold caches. It records nothing.
func WarmUp(n int) {
	var s quicksort.RecursiveSorter

	buf := make([]int, len(warmupData))
	for i := 0; i < n; i++ {
		copy(buf, warmupData[:])
		_ = s.Sort(buf)
		s.Reset()
	}
}
