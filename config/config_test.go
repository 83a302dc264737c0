package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "globe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, BackendWebGPU, cfg.Backend)
	assert.Equal(t, -70.0, cfg.Orbit.Yaw)
	assert.Equal(t, -16.0, cfg.Orbit.Pitch)
	assert.Equal(t, 1920, cfg.Overlay.Width)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeFile(t, `
backend: ebiten
width: 800
steps: 24
logLevel: debug
orbit:
  yaw: 10
overlay:
  markerRadius: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BackendEbiten, cfg.Backend)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height, "missing keys keep defaults")
	assert.Equal(t, 24, cfg.Steps)
	assert.Equal(t, 10.0, cfg.Orbit.Yaw)
	assert.Equal(t, -16.0, cfg.Orbit.Pitch, "missing nested keys keep defaults")
	assert.Equal(t, 4, cfg.Overlay.MarkerRadius)
	assert.Equal(t, 960, cfg.Overlay.Height)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "width: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "width: wide"))
	assert.Error(t, err)
}

func TestValidateJoinsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Backend = "opengl"
	cfg.Width = 0
	cfg.Radius = 6
	cfg.Steps = 1
	cfg.LogLevel = "loud"
	cfg.Orbit.Friction = 1

	err := cfg.Validate()
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "errors are joined")
	assert.Len(t, joined.Unwrap(), 6)
	assert.Contains(t, err.Error(), `"opengl"`)
	assert.Contains(t, err.Error(), "orbit distance")
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative frame limit", func(c *Config) { c.FrameLimit = -30 }},
		{"pitch limit at the pole", func(c *Config) { c.Orbit.PitchLimit = 90 }},
		{"empty overlay", func(c *Config) { c.Overlay.Height = 0 }},
		{"zero marker", func(c *Config) { c.Overlay.MarkerRadius = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
