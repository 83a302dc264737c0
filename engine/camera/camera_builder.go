package camera

import "github.com/Carmen-Shannon/oxy-globe/common"

type CameraBuilderOption func(*cameraImpl)

// WithViewport sets the initial viewport size used to build the projection.
// Non-positive sizes are ignored.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's viewport
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		if width <= 0 || height <= 0 {
			return
		}
		c.width = width
		c.height = height
	}
}

// WithZoomScale sets the initial zoom scale, clamped to [MinZoomScale, MaxZoomScale].
//
// Parameters:
//   - zoomScale: frustum half-height at the near plane
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's zoom scale
func WithZoomScale(zoomScale float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoomScale = common.Clamp(zoomScale, MinZoomScale, MaxZoomScale)
	}
}

// WithOrbitDistance sets the eye's distance from the globe center.
//
// Parameters:
//   - distance: orbit distance, must exceed the globe radius
//
// Returns:
//   - CameraBuilderOption: a function that sets the orbit distance
func WithOrbitDistance(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orbitDistance = distance
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}
