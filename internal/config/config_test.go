// SPDX-License-Identifier: EPL-2.0

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/bsswav/audio"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, uint64(0), cfg.Dataset.Seed)
	assert.Equal(t, 2000, cfg.Dataset.NumPoints)
	assert.InDelta(t, 0.2, cfg.Dataset.NoiseStd, 0)
	assert.Equal(t, 8000, cfg.Output.SampleRate)
	assert.Equal(t, "int16", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadNonExistent(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "typo.yaml")

	cfg, err := Load(missing)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOptional(t *testing.T) {
	t.Parallel()

	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "bsswav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset:\n  numPoints: 12\n"), 0o644))

	cfg, err = LoadOptional(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Dataset.NumPoints)
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bsswav.yaml")
	content := "dataset:\n  seed: 42\n  numPoints: 500\noutput:\n  format: float32\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Dataset.Seed)
	assert.Equal(t, 500, cfg.Dataset.NumPoints)
	assert.InDelta(t, 0.2, cfg.Dataset.NoiseStd, 0)
	assert.Equal(t, 8000, cfg.Output.SampleRate)
	assert.Equal(t, "debug", cfg.Log.Level)

	format, err := cfg.SampleFormat()
	require.NoError(t, err)
	assert.Equal(t, audio.FormatFloat32, format)
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "bsswav.yaml")

	cfg := Default()
	cfg.Dataset.Seed = 7
	cfg.Output.Format = "uint8"
	cfg.Log.Development = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero points", func(c *Config) { c.Dataset.NumPoints = 0 }, audio.ErrInvalidParameter},
		{"negative noise", func(c *Config) { c.Dataset.NoiseStd = -0.1 }, audio.ErrInvalidParameter},
		{"NaN noise", func(c *Config) { c.Dataset.NoiseStd = math.NaN() }, audio.ErrInvalidParameter},
		{"zero rate", func(c *Config) { c.Output.SampleRate = 0 }, audio.ErrInvalidParameter},
		{"unknown format", func(c *Config) { c.Output.Format = "int24" }, audio.ErrUnrecognizedSampleFormat},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, audio.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}

	cfg := Default()
	cfg.Dataset.NoiseStd = 0
	require.NoError(t, cfg.Validate())
}

func TestValidate_LogLevelMatchesLogger(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "warning", "WARN", "Error", ""} {
		cfg := Default()
		cfg.Log.Level = level
		require.NoError(t, cfg.Validate(), level)
	}
}
