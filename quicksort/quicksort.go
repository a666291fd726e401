// Package quicksort implements instrumented recursive and iterative
// quicksort variants. Each sorter counts algorithm steps, times the sort
// with the monotonic clock and verifies the result.
package quicksort

import (
	"fmt"
	"slices"
	"time"
)

// Variant names a quicksort implementation.
type Variant string

const (
	Recursive Variant = "recursive"
	Iterative Variant = "iterative"
)

// Sorter sorts integer slices in place while tracking an operation count
// and the elapsed time of the last sort.
type Sorter interface {
	Sort(data []int) error
	Count() int
	Elapsed() time.Duration
	Reset()
	Variant() Variant
}

// UnsortedError reports that a sort left the data out of order.
type UnsortedError struct {
	Variant Variant
	// Index is the position of the first element greater than its successor.
	Index int
	Data  []int
}

func (e *UnsortedError) Error() string {
	return fmt.Sprintf("%s quicksort failed to sort %d elements: inversion at index %d",
		e.Variant, len(e.Data), e.Index)
}

// KnownVariants returns the list of supported variant names.
func KnownVariants() []Variant {
	return []Variant{Recursive, Iterative}
}

// New returns a fresh sorter for the named variant.
func New(v Variant) (Sorter, error) {
	switch v {
	case Recursive:
		return &RecursiveSorter{}, nil
	case Iterative:
		return &IterativeSorter{}, nil
	default:
		return nil, fmt.Errorf("unknown quicksort variant %q", v)
	}
}

// instrument holds the counter and clock readings shared by both variants.
type instrument struct {
	count int
	start time.Time
	end   time.Time
}

func (in *instrument) Count() int { return in.count }

func (in *instrument) Elapsed() time.Duration { return in.end.Sub(in.start) }

func (in *instrument) Reset() {
	in.count = 0
	in.start = time.Time{}
	in.end = time.Time{}
}

// timed runs sortFn between two monotonic clock readings, then checks
// the result outside the timed interval.
func (in *instrument) timed(v Variant, data []int, sortFn func([]int)) error {
	in.start = time.Now()
	sortFn(data)
	in.end = time.Now()

	if i := firstInversion(data); i >= 0 {
		return &UnsortedError{Variant: v, Index: i, Data: slices.Clone(data)}
	}

	return nil
}

// partition arranges arr[low..high] around the pivot arr[high] so that
// every element <= pivot precedes it, and returns the pivot's index.
// One call counts as one operation.
func (in *instrument) partition(arr []int, low, high int) int {
	in.count++

	pivot := arr[high]
	i := low - 1

	for j := low; j < high; j++ {
		if arr[j] <= pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}

	arr[i+1], arr[high] = arr[high], arr[i+1]

	return i + 1
}

// firstInversion returns the first index i with data[i] > data[i+1],
// or -1 when data is in non-decreasing order.
func firstInversion(data []int) int {
	for i := 0; i+1 < len(data); i++ {
		if data[i] > data[i+1] {
			return i
		}
	}

	return -1
}
