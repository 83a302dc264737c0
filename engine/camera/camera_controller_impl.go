package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultYaw is the initial yaw in degrees, stored wrapped as 290.
	DefaultYaw = -70.0
	// DefaultPitch is the initial orbit pitch in degrees.
	DefaultPitch = -16.0
	// DefaultFriction is the per-frame velocity decay factor.
	DefaultFriction = 0.93
	// DefaultSnapThreshold is the velocity magnitude that snaps to zero after decay.
	DefaultSnapThreshold = 0.08
	// DefaultPitchRatio scales the pitch velocity during integration.
	DefaultPitchRatio = 0.7
	// DefaultPitchLimit is the maximum absolute pitch in degrees.
	DefaultPitchLimit = 45.0
)

// orbitControllerImpl is the single implementation of OrbitController.
type orbitControllerImpl struct {
	mu *sync.Mutex

	yaw   float64
	pitch float64

	yawVelocity   float64
	pitchVelocity float64

	friction      float64
	snapThreshold float64
	pitchRatio    float64
	pitchLimit    float64

	camera Camera
}

// Compile-time interface compliance check
var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller at the default yaw and pitch with zero velocity.
// If a camera is attached through WithCamera it is synced to the initial pitch.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:            &sync.Mutex{},
		yaw:           DefaultYaw,
		pitch:         DefaultPitch,
		friction:      DefaultFriction,
		snapThreshold: DefaultSnapThreshold,
		pitchRatio:    DefaultPitchRatio,
		pitchLimit:    DefaultPitchLimit,
	}

	for _, option := range options {
		option(oc)
	}

	oc.yaw = common.WrapDegrees(oc.yaw)
	oc.pitch = common.Clamp(oc.pitch, -oc.pitchLimit, oc.pitchLimit)
	oc.syncCamera()
	return oc
}

// --- internal helpers ---

// decay applies friction and the snap threshold. Caller must hold the mutex.
func (oc *orbitControllerImpl) decay() {
	oc.yawVelocity *= oc.friction
	oc.pitchVelocity *= oc.friction
	if math.Abs(oc.yawVelocity) < oc.snapThreshold {
		oc.yawVelocity = 0
	}
	if math.Abs(oc.pitchVelocity) < oc.snapThreshold {
		oc.pitchVelocity = 0
	}
}

// integrate folds the velocities into the angles. Caller must hold the mutex.
func (oc *orbitControllerImpl) integrate() {
	oc.yaw = common.WrapDegrees(oc.yaw + oc.yawVelocity)
	oc.pitch = common.Clamp(oc.pitch+oc.pitchVelocity*oc.pitchRatio, -oc.pitchLimit, oc.pitchLimit)
}

// syncCamera pushes the negated pitch into the attached camera. Caller must hold the mutex.
func (oc *orbitControllerImpl) syncCamera() {
	if oc.camera == nil {
		return
	}
	oc.camera.UpdateOrbitCamera(-oc.pitch)
}

func (oc *orbitControllerImpl) Yaw() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.yaw
}

func (oc *orbitControllerImpl) Pitch() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pitch
}

func (oc *orbitControllerImpl) Velocity() (yaw, pitch float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.yawVelocity, oc.pitchVelocity
}

func (oc *orbitControllerImpl) SetVelocity(yaw, pitch float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.yawVelocity = yaw
	oc.pitchVelocity = pitch
}

func (oc *orbitControllerImpl) SetYaw(deg float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.yaw = common.WrapDegrees(deg)
}

func (oc *orbitControllerImpl) SetPitch(deg float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.pitch = common.Clamp(deg, -oc.pitchLimit, oc.pitchLimit)
	oc.syncCamera()
}

func (oc *orbitControllerImpl) Decay() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.decay()
}

func (oc *orbitControllerImpl) Integrate() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.integrate()
}

func (oc *orbitControllerImpl) Advance() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.decay()
	oc.integrate()
	oc.syncCamera()
}

func (oc *orbitControllerImpl) ModelMatrix() mgl32.Mat4 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return mgl32.HomogRotate3DY(float32(-oc.yaw * math.Pi / 180))
}

func (oc *orbitControllerImpl) Camera() Camera {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.camera
}

func (oc *orbitControllerImpl) SetCamera(cam Camera) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.camera = cam
	oc.syncCamera()
}
