// SPDX-License-Identifier: MIT
// Package: manager
//
// config.go: YAML profile for stochastic search drivers.
//
// A profile fixes the generator seed and log level of a Manager, and the
// random-generation knobs a driver passes to ExportRandomParts and
// AddRandomParts:
//
//	seed: 42
//	log_level: debug
//	min_percentage_added: 0.5
//	mean_part_number: 4

package manager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a profile that fails Validate.
var ErrInvalidConfig = errors.New("manager: invalid config")

// Config is the YAML profile of a Manager.
type Config struct {
	Seed               uint64  `yaml:"seed"`
	LogLevel           string  `yaml:"log_level"`
	MinPercentageAdded float64 `yaml:"min_percentage_added"`
	MeanPartNumber     int     `yaml:"mean_part_number"`
}

// DefaultConfig returns the profile matching New without options.
func DefaultConfig() Config {
	return Config{Seed: DefaultSeed, MinPercentageAdded: 0, MeanPartNumber: 2}
}

// ParseConfig decodes a YAML profile over DefaultConfig and validates it.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the profile at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MinPercentageAdded < 0 || c.MinPercentageAdded > 1 {
		return fmt.Errorf("min_percentage_added %v not in [0,1]: %w", c.MinPercentageAdded, ErrInvalidConfig)
	}
	if c.MeanPartNumber < 1 {
		return fmt.Errorf("mean_part_number %d < 1: %w", c.MeanPartNumber, ErrInvalidConfig)
	}
	if c.LogLevel != "" {
		if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level %q: %v: %w", c.LogLevel, err, ErrInvalidConfig)
		}
	}
	return nil
}

// Logger builds the logger of the profile: a no-op logger when LogLevel is
// empty, a production logger at LogLevel otherwise.
func (c Config) Logger() (*zap.Logger, error) {
	if c.LogLevel == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level %q: %v: %w", c.LogLevel, err, ErrInvalidConfig)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}

// Options returns the options reproducing the profile.
func (c Config) Options() ([]Option, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}
	return []Option{WithSeed(c.Seed), WithLogger(logger)}, nil
}
