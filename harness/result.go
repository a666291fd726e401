// Package harness runs the quicksort variants over generated datasets
// and collects per-trial operation counts and timings.
package harness

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/weiihann/sortbench/quicksort"
)

// ErrMalformedRaw indicates a raw results file that cannot be parsed.
var ErrMalformedRaw = errors.New("malformed raw results")

// Sample is the measurement of one variant on one trial.
type Sample struct {
	Size    int
	Trial   int
	Count   int
	Elapsed time.Duration
}

// Table holds one variant's samples, keyed by dataset size in trial
// order.
type Table struct {
	Variant quicksort.Variant
	Sizes   []int
	Samples map[int][]Sample
}

func newTable(v quicksort.Variant, sizes []int, trials int) Table {
	t := Table{
		Variant: v,
		Sizes:   slices.Clone(sizes),
		Samples: make(map[int][]Sample, len(sizes)),
	}

	for _, size := range sizes {
		t.Samples[size] = make([]Sample, 0, trials)
	}

	return t
}

func (t *Table) add(s Sample) {
	t.Samples[s.Size] = append(t.Samples[s.Size], s)
}

// Counts returns the operation counts recorded for size.
func (t Table) Counts(size int) []int {
	samples := t.Samples[size]
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = s.Count
	}

	return out
}

// Times returns the elapsed times recorded for size.
func (t Table) Times(size int) []time.Duration {
	samples := t.Samples[size]
	out := make([]time.Duration, len(samples))
	for i, s := range samples {
		out[i] = s.Elapsed
	}

	return out
}

// Results holds the recursive and iterative tables of one run.
type Results struct {
	RunID     string
	Sizes     []int
	Trials    int
	Recursive Table
	Iterative Table
}

// table returns the table recording variant v.
func (r *Results) table(v quicksort.Variant) *Table {
	if v == quicksort.Iterative {
		return &r.Iterative
	}

	return &r.Recursive
}

// Tables returns both tables in reporting order.
func (r *Results) Tables() []Table {
	return []Table{r.Recursive, r.Iterative}
}

// WriteRaw writes the raw samples as plain text: the recursive block, a
// blank line, then the iterative block. Each block has one line per size
// of the form "<size> <count>,<nanoseconds> ..." in trial order.
func WriteRaw(w io.Writer, r *Results) error {
	bw := bufio.NewWriter(w)

	for i, t := range r.Tables() {
		if i > 0 {
			bw.WriteString("\n")
		}

		for _, size := range t.Sizes {
			bw.WriteString(strconv.Itoa(size))

			for _, s := range t.Samples[size] {
				fmt.Fprintf(bw, " %d,%d", s.Count, s.Elapsed.Nanoseconds())
			}

			bw.WriteString("\n")
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write raw results: %w", err)
	}

	return nil
}

// ParseRaw reads results written by WriteRaw.
func ParseRaw(rd io.Reader) (*Results, error) {
	variants := quicksort.KnownVariants()
	tables := make([]Table, 0, len(variants))
	current := Table{Samples: map[int][]Sample{}}
	trials := -1

	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if len(current.Sizes) == 0 {
				continue
			}

			tables = append(tables, current)
			current = Table{Samples: map[int][]Sample{}}

			continue
		}

		if len(tables) == len(variants) {
			return nil, fmt.Errorf("%w: line %d: more than %d blocks",
				ErrMalformedRaw, lineNum, len(variants))
		}

		current.Variant = variants[len(tables)]

		size, samples, err := parseRawLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRaw, lineNum, err)
		}

		if trials == -1 {
			trials = len(samples)
		} else if len(samples) != trials {
			return nil, fmt.Errorf("%w: line %d: %d trials, want %d",
				ErrMalformedRaw, lineNum, len(samples), trials)
		}

		if _, dup := current.Samples[size]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate size %d",
				ErrMalformedRaw, lineNum, size)
		}

		current.Sizes = append(current.Sizes, size)
		current.Samples[size] = samples
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read raw results: %w", err)
	}

	if len(current.Sizes) > 0 {
		tables = append(tables, current)
	}

	if len(tables) != len(variants) {
		return nil, fmt.Errorf("%w: found %d blocks, want %d",
			ErrMalformedRaw, len(tables), len(variants))
	}

	rec, it := tables[0], tables[1]
	if !slices.Equal(rec.Sizes, it.Sizes) {
		return nil, fmt.Errorf("%w: blocks list different sizes %v and %v",
			ErrMalformedRaw, rec.Sizes, it.Sizes)
	}

	return &Results{
		Sizes:     rec.Sizes,
		Trials:    trials,
		Recursive: rec,
		Iterative: it,
	}, nil
}

func parseRawLine(line string) (int, []Sample, error) {
	fields := strings.Fields(line)

	size, err := strconv.Atoi(fields[0])
	if err != nil || size <= 0 {
		return 0, nil, fmt.Errorf("invalid size %q", fields[0])
	}

	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("size %d has no samples", size)
	}

	samples := make([]Sample, 0, len(fields)-1)

	for i, pair := range fields[1:] {
		countStr, timeStr, ok := strings.Cut(pair, ",")
		if !ok {
			return 0, nil, fmt.Errorf("sample %q is not count,time", pair)
		}

		count, err := strconv.Atoi(countStr)
		if err != nil || count < 0 {
			return 0, nil, fmt.Errorf("invalid count %q", countStr)
		}

		ns, err := strconv.ParseInt(timeStr, 10, 64)
		if err != nil || ns < 0 {
			return 0, nil, fmt.Errorf("invalid time %q", timeStr)
		}

		samples = append(samples, Sample{
			Size:    size,
			Trial:   i,
			Count:   count,
			Elapsed: time.Duration(ns),
		})
	}

	return size, samples, nil
}
