// Package config loads and validates benchmark run settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a benchmark run.
type Config struct {
	// Sizes are the dataset sizes, benchmarked in order.
	Sizes []int `yaml:"sizes" validate:"required,min=1,unique,dive,gt=0"`

	// Trials is the number of datasets sorted at each size.
	Trials int `yaml:"trials" validate:"gt=0"`

	// Warmup is the number of throwaway sorts before timing starts.
	Warmup int `yaml:"warmup" validate:"gte=0"`

	// Seed for dataset generation. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	// Output is the path of the raw results file.
	Output string `yaml:"output" validate:"required"`
}

// Default returns the standard benchmark settings: sizes 100 to 1000 in
// steps of 100, 50 trials each.
func Default() Config {
	return Config{
		Sizes:  []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000},
		Trials: 50,
		Warmup: 100_000,
		Output: "QS_benchmark_output.txt",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q", fe.Namespace(), fe.Tag())
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Fields absent from the document keep their default values.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
