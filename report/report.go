// Package report summarizes benchmark results into per-size rows and
// formats them as comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/weiihann/sortbench/harness"
	"github.com/weiihann/sortbench/quicksort"
	"github.com/weiihann/sortbench/stats"
)

// notAvailable is displayed in place of an undefined statistic.
const notAvailable = "N/A"

// Row summarizes the trials of one variant at one dataset size.
// A nil coefficient of variation means it was undefined for the samples.
type Row struct {
	Size      int      `json:"size"`
	MeanCount float64  `json:"mean_count"`
	CVCount   *float64 `json:"cv_count"`
	MeanTime  float64  `json:"mean_time_ns"`
	CVTime    *float64 `json:"cv_time"`
}

// VariantSummary holds one variant's rows in size order.
type VariantSummary struct {
	Variant quicksort.Variant `json:"variant"`
	Rows    []Row             `json:"rows"`
}

// Summary is the aggregated view of a benchmark run.
type Summary struct {
	RunID    string           `json:"run_id,omitempty"`
	Trials   int              `json:"trials"`
	Variants []VariantSummary `json:"variants"`
}

// Summarize computes the mean and coefficient of variation of the
// operation counts and elapsed times for every size of every variant.
func Summarize(res *harness.Results) (*Summary, error) {
	if res == nil || len(res.Sizes) == 0 {
		return nil, fmt.Errorf("no results to summarize")
	}

	summary := &Summary{
		RunID:  res.RunID,
		Trials: res.Trials,
	}

	for _, table := range res.Tables() {
		vs := VariantSummary{
			Variant: table.Variant,
			Rows:    make([]Row, 0, len(table.Sizes)),
		}

		for _, size := range table.Sizes {
			if n := len(table.Samples[size]); n != res.Trials {
				return nil, fmt.Errorf("%s size %d: %d samples, want %d trials",
					table.Variant, size, n, res.Trials)
			}

			row, err := summarizeSize(size, stats.Ints(table.Counts(size)), stats.Ints(table.Times(size)))
			if err != nil {
				return nil, fmt.Errorf("%s size %d: %w", table.Variant, size, err)
			}

			vs.Rows = append(vs.Rows, row)
		}

		summary.Variants = append(summary.Variants, vs)
	}

	return summary, nil
}

func summarizeSize(size int, counts, times []float64) (Row, error) {
	row := Row{Size: size}

	var err error

	if row.MeanCount, err = stats.Mean(counts); err != nil {
		return row, err
	}

	if row.MeanTime, err = stats.Mean(times); err != nil {
		return row, err
	}

	row.CVCount = optionalCV(counts)
	row.CVTime = optionalCV(times)

	return row, nil
}

func optionalCV(xs []float64) *float64 {
	cv, err := stats.CoefficientOfVariation(xs)
	if err != nil {
		return nil
	}

	return &cv
}

var columns = []string{"Size", "Avg Count", "Coef Count", "Avg Time", "Coef Time"}

// cells returns the display values of a row, numbers to two decimals.
func (r Row) cells() []string {
	return []string{
		fmt.Sprintf("%d", r.Size),
		fmt.Sprintf("%.2f", r.MeanCount),
		formatOptional(r.CVCount),
		fmt.Sprintf("%.2f", r.MeanTime),
		formatOptional(r.CVTime),
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return notAvailable
	}

	return fmt.Sprintf("%.2f", *v)
}

func title(v quicksort.Variant) string {
	name := string(v)
	if name == "" {
		return "Quicksort Report"
	}

	return strings.ToUpper(name[:1]) + name[1:] + " Quicksort Report"
}

// Generate writes a markdown table per variant.
func Generate(w io.Writer, s *Summary) error {
	if s == nil || len(s.Variants) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	if s.RunID != "" {
		fmt.Fprintf(w, "Run: %s\n", s.RunID)
	}

	fmt.Fprintf(w, "Trials per size: %d\n", s.Trials)
	fmt.Fprintln(w, "Times are in nanoseconds; coefficients of variation are percentages.")

	for _, vs := range s.Variants {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "### %s\n", title(vs.Variant))
		fmt.Fprintln(w)

		fmt.Fprintf(w, "| %s |\n", strings.Join(columns, " | "))
		fmt.Fprintln(w, "|------|-----------|------------|----------|-----------|")

		for _, r := range vs.Rows {
			fmt.Fprintf(w, "| %s |\n", strings.Join(r.cells(), " | "))
		}
	}

	return nil
}

// GenerateJSON writes the summary as JSON to w.
func GenerateJSON(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
