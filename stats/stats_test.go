package stats

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"single", []float64{4.5}, 4.5},
		{"one two three", []float64{1, 2, 3}, 2},
		{"negative", []float64{-2, 2, -4, 4}, 0},
		{"fractions", []float64{0.5, 1.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.xs)
			if err != nil {
				t.Fatalf("Mean failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Mean = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeanEmpty(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrDegenerate) {
		t.Errorf("error = %v, want ErrDegenerate", err)
	}
}

func TestSampleStdDev(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		// Sum of squared deviations is 32 over 8 samples: 32/7 with n-1.
		{"eight samples", []float64{2, 4, 4, 4, 5, 5, 7, 9}, math.Sqrt(32.0 / 7.0)},
		{"two samples", []float64{1, 3}, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleStdDev(tt.xs)
			if err != nil {
				t.Fatalf("SampleStdDev failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SampleStdDev = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleStdDevTooFew(t *testing.T) {
	for _, xs := range [][]float64{nil, {1}} {
		if _, err := SampleStdDev(xs); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%v: error = %v, want ErrDegenerate", xs, err)
		}
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	got, err := CoefficientOfVariation([]float64{1, 3})
	if err != nil {
		t.Fatalf("CoefficientOfVariation failed: %v", err)
	}
	if want := 100 * math.Sqrt2 / 2; math.Abs(got-want) > 1e-9 {
		t.Errorf("CV = %v, want %v", got, want)
	}

	got, err = CoefficientOfVariation([]float64{7, 7, 7, 7})
	if err != nil {
		t.Fatalf("CoefficientOfVariation failed: %v", err)
	}
	if got != 0 {
		t.Errorf("CV of constant samples = %v, want 0", got)
	}
}

func TestCoefficientOfVariationDegenerate(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
	}{
		{"empty", nil},
		{"single", []float64{10}},
		{"zero mean", []float64{-1, 1}},
		{"all zero", []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CoefficientOfVariation(tt.xs); !errors.Is(err, ErrDegenerate) {
				t.Errorf("error = %v, want ErrDegenerate", err)
			}
		})
	}
}

func TestInts(t *testing.T) {
	if got := Ints([]int{1, 2, 3}); !slices.Equal(got, []float64{1, 2, 3}) {
		t.Errorf("Ints([]int) = %v", got)
	}
	if got := Ints([]time.Duration{1500}); !slices.Equal(got, []float64{1500}) {
		t.Errorf("Ints([]time.Duration) = %v", got)
	}
	if got := Ints([]int64{}); len(got) != 0 {
		t.Errorf("Ints(empty) = %v", got)
	}
}
