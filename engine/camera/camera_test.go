package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrixEpsilon = 1e-4

var identity = mgl32.Ident4()

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, c.Look())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, MaxZoomScale, c.ZoomScale())
	assert.True(t, c.InverseValid())
}

func TestViewInversePairAcrossPitches(t *testing.T) {
	c := NewCamera()
	for pitch := -45.0; pitch <= 45.0; pitch += 5 {
		c.UpdateOrbitCamera(pitch)
		product := c.ViewMatrix().Mul4(c.InverseViewMatrix())
		assert.InDeltaSlicef(t, identity[:], product[:], matrixEpsilon,
			"view * inverse view is not identity at pitch %v", pitch)
	}
}

func TestProjectionInversePairAcrossViewports(t *testing.T) {
	c := NewCamera()
	cases := []struct {
		width, height int
		zoom          float64
	}{
		{800, 600, 1},
		{600, 800, 0.5},
		{1920, 1080, 0.25},
		{1, 1, 0.75},
	}
	for _, tc := range cases {
		c.SetProjection(tc.width, tc.height, tc.zoom)
		product := c.ProjectionMatrix().Mul4(c.InverseProjectionMatrix())
		assert.InDeltaSlicef(t, identity[:], product[:], matrixEpsilon,
			"projection * inverse projection is not identity for %+v", tc)
	}
}

func TestUpdateOrbitCameraPlacesEye(t *testing.T) {
	c := NewCamera()
	c.UpdateOrbitCamera(30)

	eye := c.Eye()
	assert.InDelta(t, 0, eye.X(), 1e-6)
	assert.InDelta(t, 2.5, eye.Y(), 1e-5)
	assert.InDelta(t, 5*math.Cos(math.Pi/6), eye.Z(), 1e-5)
	assert.InDelta(t, 5, eye.Len(), 1e-5)

	look := c.Look()
	opposite := eye.Mul(-1)
	assert.InDeltaSlice(t, opposite[:], look[:], 1e-6)

	// The inverse view maps the camera origin back to the eye.
	origin := c.InverseViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDeltaSlice(t, eye[:], origin[:3], matrixEpsilon)
}

func TestSetProjectionClampsZoom(t *testing.T) {
	c := NewCamera()

	c.SetProjection(800, 600, 5)
	assert.Equal(t, MaxZoomScale, c.ZoomScale())

	c.SetProjection(800, 600, 0.1)
	assert.Equal(t, MinZoomScale, c.ZoomScale())

	c.SetZoomScale(0.5)
	assert.Equal(t, 0.5, c.ZoomScale())
	w, h := c.Viewport()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestSetProjectionIgnoresEmptyViewport(t *testing.T) {
	c := NewCamera(WithViewport(640, 480))
	before := c.ProjectionMatrix()

	c.SetProjection(0, 0, 0.5)

	assert.Equal(t, before, c.ProjectionMatrix())
	w, h := c.Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestProjectionFrustumBounds(t *testing.T) {
	c := NewCamera()
	c.SetProjection(400, 200, 0.5)

	// The top-right corner of the near plane sits at (ratio*zoom, zoom, -near).
	corner := c.ProjectionMatrix().Mul4x1(mgl32.Vec4{1, 0.5, -1, 1})
	ndc := corner.Vec3().Mul(1 / corner.W())
	assert.InDelta(t, 1, ndc.X(), 1e-5)
	assert.InDelta(t, 1, ndc.Y(), 1e-5)
	assert.InDelta(t, -1, ndc.Z(), 1e-5)
}

func TestDegenerateLookAtKeepsPreviousInverse(t *testing.T) {
	c := NewCamera()
	before := c.InverseViewMatrix()

	c.SetLookAt(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0})

	assert.False(t, c.InverseValid())
	assert.Equal(t, before, c.InverseViewMatrix())
}

func TestGPUGlobeUniformMarshal(t *testing.T) {
	u := GPUGlobeUniform{MVP: mgl32.Ident4(), Model: mgl32.Translate3D(1, 2, 3)}
	buf := u.Marshal()

	require.Len(t, buf, 128)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[64+14*4:])))
}
