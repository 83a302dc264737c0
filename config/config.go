// Package config holds the globe application's settings, loaded from YAML and validated as a whole.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/mesh"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
	"sigs.k8s.io/yaml"
)

const (
	// BackendWebGPU draws with the GLFW window and WebGPU renderer.
	BackendWebGPU = "webgpu"
	// BackendEbiten draws with the ebiten shell, which also accepts real multi-touch.
	BackendEbiten = "ebiten"
)

// Config is the complete application configuration. Field names follow the YAML keys.
type Config struct {
	Backend  string  `json:"backend"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	MapPath  string  `json:"mapPath"`
	Radius   float64 `json:"radius"`
	Steps    int     `json:"steps"`
	TickRate float64 `json:"tickRate"`
	// FrameLimit caps the WebGPU render loop in frames per second, 0 uncapped.
	FrameLimit float64 `json:"frameLimit"`
	Profile    bool    `json:"profile"`
	LogLevel   string  `json:"logLevel"`

	Orbit   OrbitConfig   `json:"orbit"`
	Overlay OverlayConfig `json:"overlay"`
}

// OrbitConfig sets the initial camera orbit and its inertia.
type OrbitConfig struct {
	Yaw        float64 `json:"yaw"`
	Pitch      float64 `json:"pitch"`
	Friction   float64 `json:"friction"`
	PitchLimit float64 `json:"pitchLimit"`
}

// OverlayConfig sizes the marker layer and the generated base map.
type OverlayConfig struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	MarkerRadius int `json:"markerRadius"`
}

// Default returns the configuration used when no file or flag overrides a field.
func Default() Config {
	return Config{
		Backend:  BackendWebGPU,
		Width:    1280,
		Height:   720,
		Radius:   float64(mesh.DefaultRadius),
		Steps:    mesh.DefaultSteps,
		TickRate: 60,
		LogLevel: "info",
		Orbit: OrbitConfig{
			Yaw:        camera.DefaultYaw,
			Pitch:      camera.DefaultPitch,
			Friction:   camera.DefaultFriction,
			PitchLimit: camera.DefaultPitchLimit,
		},
		Overlay: OverlayConfig{
			Width:        overlay.DefaultWidth,
			Height:       overlay.DefaultHeight,
			MarkerRadius: overlay.DefaultMarkerRadius,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default value.
//
// Parameters:
//   - path: YAML file, empty returns the defaults
//
// Returns:
//   - Config: the merged configuration, not yet validated
//   - error: read or parse failure
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
//
// Returns:
//   - error: nil, or all problems joined with errors.Join
func (c Config) Validate() error {
	var errs []error
	if c.Backend != BackendWebGPU && c.Backend != BackendEbiten {
		errs = append(errs, fmt.Errorf("backend must be %q or %q, got %q", BackendWebGPU, BackendEbiten, c.Backend))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if !(c.Radius > 0) {
		errs = append(errs, fmt.Errorf("radius must be positive, got %v", c.Radius))
	}
	if distance := float64(camera.DefaultOrbitDistance); c.Radius >= distance {
		errs = append(errs, fmt.Errorf("radius %v must be smaller than the orbit distance %v", c.Radius, distance))
	}
	if c.Steps < 2 {
		errs = append(errs, fmt.Errorf("steps must be at least 2, got %d", c.Steps))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %v", c.TickRate))
	}
	if c.FrameLimit < 0 {
		errs = append(errs, fmt.Errorf("frame limit must not be negative, got %v", c.FrameLimit))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Orbit.Friction <= 0 || c.Orbit.Friction >= 1 {
		errs = append(errs, fmt.Errorf("orbit friction must be in (0, 1), got %v", c.Orbit.Friction))
	}
	if c.Orbit.PitchLimit <= 0 || c.Orbit.PitchLimit >= 90 {
		errs = append(errs, fmt.Errorf("orbit pitch limit must be in (0, 90), got %v", c.Orbit.PitchLimit))
	}
	if c.Overlay.Width <= 0 || c.Overlay.Height <= 0 {
		errs = append(errs, fmt.Errorf("overlay size must be positive, got %dx%d", c.Overlay.Width, c.Overlay.Height))
	}
	if c.Overlay.MarkerRadius <= 0 {
		errs = append(errs, fmt.Errorf("marker radius must be positive, got %d", c.Overlay.MarkerRadius))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
//
// Returns:
//   - slog.Level: the level
//   - error: LogLevel is not debug, info, warn or error
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
