package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Sizes) != 10 || cfg.Sizes[0] != 100 || cfg.Sizes[9] != 1000 {
		t.Errorf("default sizes = %v", cfg.Sizes)
	}
	if cfg.Trials != 50 {
		t.Errorf("default trials = %d, want 50", cfg.Trials)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("sizes: [10, 20]\ntrials: 3\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !slices.Equal(cfg.Sizes, []int{10, 20}) {
		t.Errorf("sizes = %v, want [10 20]", cfg.Sizes)
	}
	if cfg.Trials != 3 {
		t.Errorf("trials = %d, want 3", cfg.Trials)
	}
	if cfg.Warmup != Default().Warmup {
		t.Errorf("warmup = %d, want default %d", cfg.Warmup, Default().Warmup)
	}
	if cfg.Output != Default().Output {
		t.Errorf("output = %q, want default %q", cfg.Output, Default().Output)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty sizes", "sizes: []\n"},
		{"zero size", "sizes: [10, 0]\n"},
		{"negative size", "sizes: [-1]\n"},
		{"duplicate size", "sizes: [10, 10]\n"},
		{"zero trials", "trials: 0\n"},
		{"negative warmup", "warmup: -5\n"},
		{"empty output", "output: \"\"\n"},
		{"unknown field", "sizez: [1]\n"},
		{"wrong type", "trials: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\noutput: out.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.Output != "out.txt" {
		t.Errorf("output = %q, want out.txt", cfg.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
