package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultOrbitDistance is the eye's distance from the globe center.
	DefaultOrbitDistance float32 = 5
	// DefaultNear is the near clipping plane distance of the frustum.
	DefaultNear float32 = 1
	// DefaultFar is the far clipping plane distance of the frustum.
	DefaultFar float32 = 10
	// MinZoomScale is the smallest frustum half-height (most zoomed in).
	MinZoomScale = 0.25
	// MaxZoomScale is the largest frustum half-height (most zoomed out).
	MaxZoomScale = 1.0
)

type cameraImpl struct {
	mu *sync.Mutex

	eye  mgl32.Vec3
	look mgl32.Vec3
	up   mgl32.Vec3

	orbitDistance float32
	near          float32
	far           float32

	zoomScale float64
	width     int
	height    int

	viewMatrix              mgl32.Mat4
	inverseViewMatrix       mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4

	viewInvertible       bool
	projectionInvertible bool
}

// Camera holds the view and projection matrices of the globe camera together with their inverses.
// The view pair is recomputed whenever eye, look or up change; the projection pair whenever the
// viewport or zoom scale change, so each pair is always mutually inverse.
type Camera interface {
	// Eye returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Look returns the point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at point
	Look() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// OrbitDistance returns the eye's distance from the world origin used by UpdateOrbitCamera.
	//
	// Returns:
	//   - float32: the orbit distance
	OrbitDistance() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ZoomScale returns the current frustum half-height, in [MinZoomScale, MaxZoomScale].
	//
	// Returns:
	//   - float64: the zoom scale
	ZoomScale() float64

	// Viewport returns the viewport size the projection was last built for.
	//
	// Returns:
	//   - width, height: viewport size in pixels
	Viewport() (width, height int)

	// ViewMatrix returns the world-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// InverseViewMatrix returns the camera-to-world matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse view matrix
	InverseViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the camera-to-clip matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// InverseProjectionMatrix returns the clip-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns Projection * View.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// InverseValid reports whether both the view and projection matrices were invertible when last
	// rebuilt. A false value means SetLookAt or SetProjection was given degenerate input and the
	// corresponding inverse still holds its previous value.
	//
	// Returns:
	//   - bool: true if both inverses are current
	InverseValid() bool

	// SetLookAt rebuilds the view matrix and its inverse.
	// eye must differ from look and up must not be parallel to look - eye; violating this is not
	// checked and produces a degenerate view matrix.
	//
	// Parameters:
	//   - eye: camera position
	//   - look: point to look at
	//   - up: up direction
	SetLookAt(eye, look, up mgl32.Vec3)

	// UpdateOrbitCamera places the eye on a circle of radius OrbitDistance in the YZ plane, elevated
	// pitchDeg degrees above the equator, looking through the origin, and rebuilds the view matrices.
	//
	// Parameters:
	//   - pitchDeg: camera elevation in degrees (positive = above the equator)
	UpdateOrbitCamera(pitchDeg float64)

	// SetProjection rebuilds the frustum for a viewport and zoom scale along with its inverse.
	// The zoom scale is clamped to [MinZoomScale, MaxZoomScale]. Non-positive sizes leave the
	// projection unchanged, which covers minimised windows reporting a 0x0 framebuffer.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	//   - zoomScale: frustum half-height at the near plane
	SetProjection(width, height int, zoomScale float64)

	// SetZoomScale rebuilds the projection for the current viewport with a new zoom scale.
	//
	// Parameters:
	//   - zoomScale: frustum half-height at the near plane
	SetZoomScale(zoomScale float64)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera positioned on its orbit at zero pitch with a square viewport.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:            &sync.Mutex{},
		up:            mgl32.Vec3{0, 1, 0},
		orbitDistance: DefaultOrbitDistance,
		near:          DefaultNear,
		far:           DefaultFar,
		zoomScale:     MaxZoomScale,
		width:         1,
		height:        1,
	}
	for _, option := range options {
		option(c)
	}
	c.updateOrbit(0)
	c.updateProjection()
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) Look() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.look
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) OrbitDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbitDistance
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ZoomScale() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomScale
}

func (c *cameraImpl) Viewport() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) InverseViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseViewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix.Mul4(c.viewMatrix)
}

func (c *cameraImpl) InverseValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewInvertible && c.projectionInvertible
}

func (c *cameraImpl) SetLookAt(eye, look, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLookAt(eye, look, up)
}

func (c *cameraImpl) UpdateOrbitCamera(pitchDeg float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateOrbit(pitchDeg)
}

func (c *cameraImpl) SetProjection(width, height int, zoomScale float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.zoomScale = common.Clamp(zoomScale, MinZoomScale, MaxZoomScale)
	c.updateProjection()
}

func (c *cameraImpl) SetZoomScale(zoomScale float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoomScale = common.Clamp(zoomScale, MinZoomScale, MaxZoomScale)
	c.updateProjection()
}

// setLookAt rebuilds the view pair. Caller must hold the mutex.
func (c *cameraImpl) setLookAt(eye, look, up mgl32.Vec3) {
	c.eye = eye
	c.look = look
	c.up = up
	c.viewMatrix = mgl32.LookAtV(eye, look, up)
	c.viewInvertible = common.Invert4(&c.inverseViewMatrix, c.viewMatrix)
}

// updateOrbit places the eye for a camera pitch in degrees. Caller must hold the mutex.
func (c *cameraImpl) updateOrbit(pitchDeg float64) {
	theta := pitchDeg * math.Pi / 180
	sin := float32(math.Sin(theta))
	cos := float32(math.Cos(theta))
	d := c.orbitDistance

	c.setLookAt(
		mgl32.Vec3{0, d * sin, d * cos},
		mgl32.Vec3{0, -d * sin, -d * cos},
		mgl32.Vec3{0, cos, -sin},
	)
}

// updateProjection rebuilds the projection pair from the viewport and zoom scale. Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	ratio := float32(c.width) / float32(c.height)
	z := float32(c.zoomScale)
	c.projectionMatrix = mgl32.Frustum(-ratio*z, ratio*z, -z, z, c.near, c.far)
	c.projectionInvertible = common.Invert4(&c.inverseProjectionMatrix, c.projectionMatrix)
}
