// Package stats computes the summary statistics reported for each
// benchmark series.
package stats

import (
	"errors"
	"fmt"

	mstats "github.com/aclements/go-moremath/stats"
)

// ErrDegenerate indicates that a statistic is undefined for the given
// samples: too few of them, or a zero mean.
var ErrDegenerate = errors.New("degenerate statistics")

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: mean of no samples", ErrDegenerate)
	}

	return mstats.Mean(xs), nil
}

// SampleStdDev returns the sample standard deviation of xs, using the
// n-1 denominator.
func SampleStdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: standard deviation needs at least 2 samples, got %d",
			ErrDegenerate, len(xs))
	}

	return mstats.StdDev(xs), nil
}

// CoefficientOfVariation returns the sample standard deviation of xs as
// a percentage of its mean.
func CoefficientOfVariation(xs []float64) (float64, error) {
	sd, err := SampleStdDev(xs)
	if err != nil {
		return 0, err
	}

	mean := mstats.Mean(xs)
	if mean == 0 {
		return 0, fmt.Errorf("%w: coefficient of variation with zero mean", ErrDegenerate)
	}

	return 100 * sd / mean, nil
}

// Ints converts integer samples to float64 for the functions above.
func Ints[T ~int | ~int64](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}
