// Package globe ties the camera, orbit controller, gesture interpreter and picker together behind a
// single lock and dispatches pick results to the overlay and text display.
package globe

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/gesture"
	"github.com/Carmen-Shannon/oxy-globe/engine/mesh"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
	"github.com/Carmen-Shannon/oxy-globe/engine/picker"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a snapshot of everything a renderer needs to draw one frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Model      mgl32.Mat4
	MVP        mgl32.Mat4

	Yaw       float64
	Pitch     float64
	ZoomScale float64
	Width     int
	Height    int
}

// Globe is the interactive globe. Input handling, frame updates and picks are serialized on one
// mutex, so input and frame driver goroutines may call it concurrently.
type Globe interface {
	// HandlePointer feeds one pointer event to the gesture interpreter.
	//
	// Parameters:
	//   - ev: the pointer event
	HandlePointer(ev gesture.PointerEvent)

	// Tick advances the orbit by one frame: velocity decay, integration and camera update.
	Tick()

	// Resize rebuilds the projection for a new viewport, keeping the zoom scale.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	Resize(width, height int)

	// Pick resolves a screen position and dispatches the result as a tap would.
	//
	// Parameters:
	//   - x, y: position in pixels, origin at the top-left
	//
	// Returns:
	//   - picker.Result: the pick result
	Pick(x, y float64) picker.Result

	// Frame returns the matrices and orbit state for the current frame.
	//
	// Returns:
	//   - Frame: the frame snapshot
	Frame() Frame

	// Mesh returns the globe geometry.
	//
	// Returns:
	//   - *mesh.Sphere: the immutable mesh
	Mesh() *mesh.Sphere

	// Annotator returns the marker layer painted by picks.
	//
	// Returns:
	//   - overlay.Annotator: the annotator
	Annotator() overlay.Annotator
}

type globeImpl struct {
	mu *sync.Mutex

	logger *slog.Logger

	width, height int
	radius        float32
	steps         int
	meshWorkers   int

	cameraOptions []camera.CameraBuilderOption
	orbitOptions  []camera.OrbitControllerOption

	mesh        *mesh.Sphere
	camera      camera.Camera
	orbit       camera.OrbitController
	interpreter gesture.Interpreter
	picker      picker.Picker
	annotator   overlay.Annotator
	text        overlay.TextDisplay
}

var _ Globe = &globeImpl{}

// NewGlobe builds the mesh and wires the camera, orbit controller, picker and interpreter.
//
// Parameters:
//   - options: functional options to configure the globe
//
// Returns:
//   - Globe: the ready globe
//   - error: mesh construction failure
func NewGlobe(options ...GlobeBuilderOption) (Globe, error) {
	g := &globeImpl{
		mu:     &sync.Mutex{},
		logger: slog.Default(),
		width:  1280,
		height: 720,
		radius: mesh.DefaultRadius,
		steps:  mesh.DefaultSteps,
	}
	for _, opt := range options {
		opt(g)
	}

	var meshOptions []mesh.SphereOption
	if g.meshWorkers > 0 {
		meshOptions = append(meshOptions, mesh.WithWorkers(g.meshWorkers))
	}
	sphere, err := mesh.NewSphere(g.radius, g.steps, meshOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build globe mesh: %w", err)
	}
	g.mesh = sphere

	g.camera = camera.NewCamera(append([]camera.CameraBuilderOption{camera.WithViewport(g.width, g.height)}, g.cameraOptions...)...)
	g.orbit = camera.NewOrbitController(append(append([]camera.OrbitControllerOption(nil), g.orbitOptions...), camera.WithCamera(g.camera))...)
	g.picker = picker.NewPicker(picker.WithRadius(g.radius))
	g.interpreter = gesture.NewInterpreter(&globeTarget{g: g}, gesture.WithLogger(g.logger))
	if g.annotator == nil {
		g.annotator = overlay.NewAnnotator()
	}
	if g.text == nil {
		g.text = overlay.TextFunc(func(string) {})
	}

	g.logger.Debug("globe ready",
		"triangles", sphere.TriangleCount(),
		"yaw", g.orbit.Yaw(),
		"pitch", g.orbit.Pitch(),
	)
	return g, nil
}

func (g *globeImpl) HandlePointer(ev gesture.PointerEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.interpreter.Handle(ev)
}

func (g *globeImpl) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orbit.Advance()
}

func (g *globeImpl) Resize(width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.camera.SetProjection(width, height, g.camera.ZoomScale())
}

func (g *globeImpl) Pick(x, y float64) picker.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pick(x, y)
}

func (g *globeImpl) Frame() Frame {
	g.mu.Lock()
	defer g.mu.Unlock()

	view := g.camera.ViewMatrix()
	proj := g.camera.ProjectionMatrix()
	model := g.orbit.ModelMatrix()
	width, height := g.camera.Viewport()
	return Frame{
		View:       view,
		Projection: proj,
		Model:      model,
		MVP:        proj.Mul4(view).Mul4(model),
		Yaw:        g.orbit.Yaw(),
		Pitch:      g.orbit.Pitch(),
		ZoomScale:  g.camera.ZoomScale(),
		Width:      width,
		Height:     height,
	}
}

func (g *globeImpl) Mesh() *mesh.Sphere {
	return g.mesh
}

func (g *globeImpl) Annotator() overlay.Annotator {
	return g.annotator
}

// pick resolves and dispatches a pick. Caller must hold the mutex.
func (g *globeImpl) pick(x, y float64) picker.Result {
	res := g.picker.Pick(x, y, g.camera, g.orbit.Yaw())
	if !res.Valid {
		g.logger.Debug("pick missed the globe", "x", x, "y", y)
		g.text.ShowText("")
		return res
	}

	g.text.ShowText(res.Text())
	if res.HasMarker {
		g.annotator.PaintMarker(res.MapCoord.U, res.MapCoord.V)
	}
	g.logger.Info("picked",
		"longitude", res.Longitude(),
		"latitude", res.Latitude(),
		"marker", res.HasMarker,
	)
	return res
}

// globeTarget adapts the globe to gesture.Target. The interpreter only calls it from HandlePointer,
// which already holds the globe mutex.
type globeTarget struct {
	g *globeImpl
}

func (t *globeTarget) SetVelocity(yaw, pitch float64) {
	t.g.orbit.SetVelocity(yaw, pitch)
}

func (t *globeTarget) ZoomScale() float64 {
	return t.g.camera.ZoomScale()
}

func (t *globeTarget) SetZoomScale(scale float64) {
	t.g.camera.SetZoomScale(scale)
}

func (t *globeTarget) Pick(x, y float64) {
	t.g.pick(x, y)
}
