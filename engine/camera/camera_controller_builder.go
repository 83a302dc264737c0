package camera

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithYaw sets the initial yaw in degrees. The value is wrapped into [0, 360).
//
// Parameters:
//   - deg: initial yaw in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the yaw
func WithYaw(deg float64) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.yaw = deg
	}
}

// WithPitch sets the initial pitch in degrees, clamped to the pitch limit.
//
// Parameters:
//   - deg: initial pitch in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the pitch
func WithPitch(deg float64) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pitch = deg
	}
}

// WithFriction sets the per-frame velocity multiplier.
//
// Parameters:
//   - friction: factor in (0, 1) applied to both velocities each frame
//
// Returns:
//   - OrbitControllerOption: functional option to set the friction
func WithFriction(friction float64) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.friction = friction
	}
}

// WithSnapThreshold sets the magnitude below which a decayed velocity becomes exactly zero.
//
// Parameters:
//   - threshold: snap threshold in degrees per frame
//
// Returns:
//   - OrbitControllerOption: functional option to set the snap threshold
func WithSnapThreshold(threshold float64) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.snapThreshold = threshold
	}
}

// WithPitchRatio sets the factor applied to the pitch velocity during integration.
//
// Parameters:
//   - ratio: vertical rotation ratio
//
// Returns:
//   - OrbitControllerOption: functional option to set the pitch ratio
func WithPitchRatio(ratio float64) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pitchRatio = ratio
	}
}

// WithPitchLimit sets the symmetric pitch clamp in degrees.
//
// Parameters:
//   - limit: maximum absolute pitch in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the pitch limit
func WithPitchLimit(limit float64) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pitchLimit = limit
	}
}

// WithCamera attaches the camera that Advance keeps in sync.
//
// Parameters:
//   - cam: the camera to attach
//
// Returns:
//   - OrbitControllerOption: functional option to attach the camera
func WithCamera(cam Camera) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.camera = cam
	}
}
