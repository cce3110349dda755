// SPDX-License-Identifier: EPL-2.0

// Package config loads the bsswav command settings from YAML.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ik5/bsswav/audio"
	"github.com/ik5/bsswav/dataset"
	"github.com/ik5/bsswav/internal/logger"
)

// Config holds every tunable the command exposes. The mixing matrix is not
// one of them.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig controls synthetic source generation.
type DatasetConfig struct {
	Seed      uint64  `yaml:"seed"`
	NumPoints int     `yaml:"numPoints"`
	NoiseStd  float64 `yaml:"noiseStd"`
}

// OutputConfig describes the files written for a generated dataset. Split
// output always reuses the rate and format of its input.
type OutputConfig struct {
	SampleRate int    `yaml:"sampleRate"`
	Format     string `yaml:"format"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the reference dataset settings.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Seed:      0,
			NumPoints: dataset.DefaultNumPoints,
			NoiseStd:  dataset.DefaultNoiseStd,
		},
		Output: OutputConfig{
			SampleRate: 8000,
			Format:     audio.FormatInt16.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config at path on top of Default. An empty path yields
// Default(). A named file must exist: a missing one is an error wrapping
// os.ErrNotExist, so a mistyped path never runs with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	return load(path)
}

// LoadOptional is Load for paths the user did not name. A file that does not
// exist yields Default() with no error.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return load(path)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Dataset.NumPoints <= 0 {
		return fmt.Errorf("%w: dataset.numPoints must be positive, got %d", audio.ErrInvalidParameter, c.Dataset.NumPoints)
	}

	std := c.Dataset.NoiseStd
	if std < 0 || math.IsNaN(std) || math.IsInf(std, 0) {
		return fmt.Errorf("%w: dataset.noiseStd must be a non-negative number, got %v", audio.ErrInvalidParameter, std)
	}

	if c.Output.SampleRate <= 0 {
		return fmt.Errorf("%w: output.sampleRate must be positive, got %d", audio.ErrInvalidParameter, c.Output.SampleRate)
	}

	if _, err := c.SampleFormat(); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", audio.ErrInvalidParameter, err)
	}

	return nil
}

// SampleFormat parses Output.Format.
func (c *Config) SampleFormat() (audio.SampleFormat, error) {
	return audio.ParseFormat(c.Output.Format)
}
