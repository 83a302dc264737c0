package globe

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
)

// GlobeBuilderOption is a functional option for configuring a Globe.
type GlobeBuilderOption func(g *globeImpl)

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithViewport(width, height int) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.width, g.height = width, height
	}
}

// WithRadius sets the globe radius shared by the mesh and the picker.
//
// Parameters:
//   - radius: radius in world units
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithRadius(radius float32) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.radius = radius
	}
}

// WithSteps sets the mesh subdivision.
//
// Parameters:
//   - steps: number of latitude bands
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithSteps(steps int) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.steps = steps
	}
}

// WithMeshWorkers sets how many workers build the mesh.
//
// Parameters:
//   - n: worker count, 0 uses one per CPU
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithMeshWorkers(n int) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.meshWorkers = n
	}
}

// WithCameraOptions forwards options to the camera constructor.
//
// Parameters:
//   - options: camera options, applied after the viewport
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithCameraOptions(options ...camera.CameraBuilderOption) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.cameraOptions = append(g.cameraOptions, options...)
	}
}

// WithOrbitOptions forwards options to the orbit controller constructor.
//
// Parameters:
//   - options: orbit controller options
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithOrbitOptions(options ...camera.OrbitControllerOption) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.orbitOptions = append(g.orbitOptions, options...)
	}
}

// WithAnnotator sets the layer picks paint markers on.
//
// Parameters:
//   - annotator: the overlay annotator
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithAnnotator(annotator overlay.Annotator) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.annotator = annotator
	}
}

// WithTextDisplay sets where pick text is shown.
//
// Parameters:
//   - text: the text display
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithTextDisplay(text overlay.TextDisplay) GlobeBuilderOption {
	return func(g *globeImpl) {
		g.text = text
	}
}

// WithLogger sets the structured logger for pick results and ignored input.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - GlobeBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) GlobeBuilderOption {
	return func(g *globeImpl) {
		if logger != nil {
			g.logger = logger
		}
	}
}
