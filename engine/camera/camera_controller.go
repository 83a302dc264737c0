package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitController owns the globe's rotation state: yaw and pitch in degrees plus the angular
// velocities fed by drag gestures. Each frame Advance decays the velocities, integrates them into the
// angles and pushes the resulting pitch into the attached Camera.
type OrbitController interface {
	// Yaw returns the globe's rotation about the vertical axis.
	//
	// Returns:
	//   - float64: yaw in degrees, in [0, 360)
	Yaw() float64

	// Pitch returns the orbit pitch. The camera elevation is the negation of this value.
	//
	// Returns:
	//   - float64: pitch in degrees, in [-PitchLimit, PitchLimit]
	Pitch() float64

	// Velocity returns the current angular velocities.
	//
	// Returns:
	//   - yaw: yaw velocity in degrees per frame
	//   - pitch: pitch velocity in degrees per frame, before the pitch ratio is applied
	Velocity() (yaw, pitch float64)

	// SetVelocity replaces both angular velocities.
	//
	// Parameters:
	//   - yaw: yaw velocity in degrees per frame
	//   - pitch: pitch velocity in degrees per frame
	SetVelocity(yaw, pitch float64)

	// SetYaw sets the yaw directly, wrapped into [0, 360).
	//
	// Parameters:
	//   - deg: yaw in degrees
	SetYaw(deg float64)

	// SetPitch sets the pitch directly, clamped to the pitch limit.
	//
	// Parameters:
	//   - deg: pitch in degrees
	SetPitch(deg float64)

	// Decay multiplies both velocities by the friction factor and snaps any velocity whose
	// magnitude falls below the snap threshold to exactly zero.
	Decay()

	// Integrate adds the yaw velocity to yaw and the pitch velocity scaled by the pitch ratio to
	// pitch, then clamps pitch and wraps yaw.
	Integrate()

	// Advance runs one frame: Decay, Integrate, then updates the attached camera's orbit with the
	// negated pitch. Without an attached camera only the angles change.
	Advance()

	// ModelMatrix returns the globe's model matrix, a rotation of -yaw about the Y axis.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// Camera returns the attached camera, or nil.
	//
	// Returns:
	//   - Camera: the attached camera
	Camera() Camera

	// SetCamera attaches the camera that Advance updates and immediately syncs its orbit.
	//
	// Parameters:
	//   - cam: the camera to attach
	SetCamera(cam Camera)
}
