// Package workload generates the random integer datasets that the
// quicksort benchmark sorts.
package workload

import (
	"errors"
	"fmt"
	mrand "math/rand"
	"time"
)

// DefaultMaxValue is the exclusive upper bound of generated values.
const DefaultMaxValue = 1000

// ErrInvalidSize indicates a request for a dataset with no elements.
var ErrInvalidSize = errors.New("dataset size must be positive")

// Config controls dataset generation parameters.
type Config struct {
	// Seed for the random source. Zero seeds from the current time.
	Seed int64
	// MaxValue is the exclusive upper bound of values. Zero means
	// DefaultMaxValue.
	MaxValue int
}

// Generator produces datasets of uniformly distributed integers in
// [0, MaxValue).
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if cfg.MaxValue <= 0 {
		cfg.MaxValue = DefaultMaxValue
	}

	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// Generate returns a fresh dataset of size values.
func (g *Generator) Generate(size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	data := make([]int, size)
	for i := range data {
		data[i] = g.rng.Intn(g.cfg.MaxValue)
	}

	return data, nil
}
