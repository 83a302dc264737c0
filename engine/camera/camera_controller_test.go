package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitControllerInitialState(t *testing.T) {
	oc := NewOrbitController()

	assert.Equal(t, 290.0, oc.Yaw())
	assert.Equal(t, -16.0, oc.Pitch())
	yv, pv := oc.Velocity()
	assert.Zero(t, yv)
	assert.Zero(t, pv)
}

func TestOrbitControllerSyncsCameraPitch(t *testing.T) {
	c := NewCamera()
	NewOrbitController(WithCamera(c))

	// Orbit pitch -16 lifts the eye above the equator.
	eye := c.Eye()
	assert.InDelta(t, 5*math.Sin(16*math.Pi/180), eye.Y(), 1e-5)
}

func TestIntegrateWrapsYaw(t *testing.T) {
	oc := NewOrbitController()
	oc.SetYaw(359)
	oc.SetVelocity(5, 0)

	oc.Integrate()

	assert.InDelta(t, 4, oc.Yaw(), 1e-9)

	oc.SetYaw(1)
	oc.SetVelocity(-5, 0)
	oc.Integrate()
	assert.InDelta(t, 356, oc.Yaw(), 1e-9)
}

func TestAdvanceClampsPitch(t *testing.T) {
	oc := NewOrbitController()
	for range 100 {
		oc.SetVelocity(0, 100)
		oc.Advance()
	}
	assert.Equal(t, 45.0, oc.Pitch())

	for range 100 {
		oc.SetVelocity(0, -100)
		oc.Advance()
	}
	assert.Equal(t, -45.0, oc.Pitch())
}

func TestIntegrateAppliesPitchRatio(t *testing.T) {
	oc := NewOrbitController(WithPitch(0))
	oc.SetVelocity(0, 10)

	oc.Integrate()

	assert.InDelta(t, 7, oc.Pitch(), 1e-9)
}

func TestDecaySnapsToZero(t *testing.T) {
	oc := NewOrbitController()

	oc.SetVelocity(1, -1)
	oc.Decay()
	yv, pv := oc.Velocity()
	assert.InDelta(t, 0.93, yv, 1e-12)
	assert.InDelta(t, -0.93, pv, 1e-12)

	oc.SetVelocity(0.08, -0.085)
	oc.Decay()
	yv, pv = oc.Velocity()
	assert.Equal(t, 0.0, yv)
	assert.Equal(t, 0.0, pv)
}

func TestVelocityReachesExactZero(t *testing.T) {
	oc := NewOrbitController()
	oc.SetVelocity(40, -25)

	for range 200 {
		oc.Advance()
	}

	yv, pv := oc.Velocity()
	assert.Equal(t, 0.0, yv)
	assert.Equal(t, 0.0, pv)

	yaw, pitch := oc.Yaw(), oc.Pitch()
	oc.Advance()
	assert.Equal(t, yaw, oc.Yaw())
	assert.Equal(t, pitch, oc.Pitch())
}

func TestModelMatrixRotatesByNegativeYaw(t *testing.T) {
	oc := NewOrbitController(WithYaw(90))

	p := oc.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1})

	assert.InDelta(t, -1, p.X(), 1e-6)
	assert.InDelta(t, 0, p.Y(), 1e-6)
	assert.InDelta(t, 0, p.Z(), 1e-6)
}

func TestAdvanceUpdatesCameraEachFrame(t *testing.T) {
	c := NewCamera()
	oc := NewOrbitController(WithCamera(c), WithPitch(0))
	oc.SetVelocity(0, -10)

	oc.Advance()

	// Pitch decreased, so the camera rose above the equator.
	assert.Less(t, oc.Pitch(), 0.0)
	assert.Greater(t, c.Eye().Y(), float32(0))
	assert.True(t, c.InverseValid())
}
