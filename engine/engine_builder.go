package engine

import (
	"image"
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, logs frame statistics once per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets how many times per second the orbit advances.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}

// WithBaseMap sets the map the marker layer is composited onto. Defaults to a graticule the size of
// the globe's annotator.
//
// Parameters:
//   - base: the equirectangular base map
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBaseMap(base *image.RGBA) EngineBuilderOption {
	return func(e *engine) {
		e.base = base
	}
}

// WithLabel mirrors a label into the window title.
//
// Parameters:
//   - label: the label the globe writes pick text to
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLabel(label *overlay.Label) EngineBuilderOption {
	return func(e *engine) {
		e.label = label
	}
}

// WithWheelStep sets the pinch distance one wheel notch simulates.
//
// Parameters:
//   - step: pointer separation change in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWheelStep(step float64) EngineBuilderOption {
	return func(e *engine) {
		e.wheelStep = step
	}
}

// WithLogger sets the structured logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
