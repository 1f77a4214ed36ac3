// Package config holds the run configuration of the pareduce command.
//
// A configuration starts from Default, may be overlaid by a TOML or
// YAML file with Load, and is finally overlaid by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/exascience/pareduce"
)

// Config is the configuration of one pareduce run.
type Config struct {
	// Op is the reduction operator, "sum" or "max".
	Op string `toml:"op" yaml:"op"`

	// Min and Max bound the random array elements to [Min, Max).
	Min int `toml:"min" yaml:"min"`
	Max int `toml:"max" yaml:"max"`

	// Workers is the worker hint; 0 selects the hardware concurrency.
	Workers int `toml:"workers" yaml:"workers"`

	// Seed seeds the random source; 0 selects a time-based seed.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Runs is the number of timed repetitions.
	Runs int `toml:"runs" yaml:"runs"`

	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// Default returns the default configuration: a sum over elements in
// [-100, 100), automatic worker selection, a time-based seed, one run.
func Default() Config {
	return Config{
		Op:   "sum",
		Min:  -100,
		Max:  100,
		Runs: 1,
	}
}

// Load reads the file at path on top of Default. Files with the
// extension .toml are decoded as TOML, files with .yaml or .yml as
// YAML. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q: %w", path, ext, pareduce.ErrInvalidInput)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that cfg describes a runnable reduction. Errors wrap
// pareduce.ErrInvalidInput.
func (cfg Config) Validate() error {
	if _, err := pareduce.OperatorFor[int](cfg.Op); err != nil {
		return err
	}
	switch {
	case cfg.Min > cfg.Max:
		return fmt.Errorf("min %v is greater than max %v: %w", cfg.Min, cfg.Max, pareduce.ErrInvalidInput)
	case cfg.Workers < 0:
		return fmt.Errorf("negative worker hint %v: %w", cfg.Workers, pareduce.ErrInvalidInput)
	case cfg.Runs <= 0:
		return fmt.Errorf("invalid number of runs %v: %w", cfg.Runs, pareduce.ErrInvalidInput)
	}
	return nil
}
