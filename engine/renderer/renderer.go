// Package renderer draws the globe with WebGPU: one textured, depth-tested, back-face culled pipeline
// fed by the mesh, the frame matrices and the composited map texture.
package renderer

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/globe"
	"github.com/Carmen-Shannon/oxy-globe/engine/mesh"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// DepthCorrection maps GL clip space depth, z/w in [-1, 1], to the [0, 1] range WebGPU expects.
var DepthCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Renderer draws the globe to a window surface.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size. Zero sizes, as reported while a
	// window is minimized, are ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	//
	// Returns:
	//   - error: surface configuration failure
	Resize(width, height int) error

	// UpdateTexture replaces the globe texture.
	//
	// Parameters:
	//   - data: RGBA pixels of the composited map
	//
	// Returns:
	//   - error: upload failure
	UpdateTexture(data common.TextureStagingData) error

	// Draw renders one frame and presents it.
	//
	// Parameters:
	//   - frame: matrices for this frame
	//
	// Returns:
	//   - error: frame acquisition or submission failure
	Draw(frame globe.Frame) error

	// Release frees all GPU resources.
	Release()
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	logger      *slog.Logger

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	clearColor           wgpu.Color
	sampler              common.SamplerStagingData

	width, height int
}

var _ Renderer = &renderer{}

// NewRenderer creates the WebGPU device for a surface and uploads the globe mesh.
// The texture must be provided with UpdateTexture before the globe becomes visible.
//
// Parameters:
//   - surface: the window's surface descriptor
//   - sphere: the globe mesh
//   - width, height: initial framebuffer size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: device, surface or pipeline creation failure
func NewRenderer(surface *wgpu.SurfaceDescriptor, sphere *mesh.Sphere, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: BackendTypeWGPU,
		logger:      slog.Default(),
		presentMode: PresentModeVSync,
		sampleCount: MSAA4x,
		clearColor:  wgpu.Color{R: 0.02, G: 0.02, B: 0.05, A: 1},
		sampler:     common.DefaultGlobeSampler(),
		width:       max(width, 1),
		height:      max(height, 1),
	}
	for _, opt := range options {
		opt(r)
	}

	backend, err := newWGPURendererBackend(surface, r.forceFallbackAdapter, r.sampleCount, r.clearColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer backend: %w", err)
	}
	r.backend = backend
	r.backend.SetPresentMode(r.presentMode)

	if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
		r.backend.Release()
		return nil, err
	}
	if err := r.backend.CreatePipeline(); err != nil {
		r.backend.Release()
		return nil, err
	}
	vertices := sphere.GPUVertices()
	if err := r.backend.InitMesh(common.SliceToBytes(vertices), len(vertices)); err != nil {
		r.backend.Release()
		return nil, err
	}
	if err := r.backend.InitSampler(r.sampler); err != nil {
		r.backend.Release()
		return nil, err
	}

	r.logger.Debug("renderer ready",
		"vertices", len(vertices),
		"msaa", uint32(r.sampleCount),
		"width", r.width,
		"height", r.height,
	)
	return r, nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 || height <= 0 {
		return nil
	}
	r.width, r.height = width, height
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) UpdateTexture(data common.TextureStagingData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.WriteTexture(data)
}

func (r *renderer) Draw(frame globe.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	uniform := camera.GPUGlobeUniform{
		MVP:   DepthCorrection.Mul4(frame.MVP),
		Model: frame.Model,
	}
	r.backend.WriteUniform(&uniform)

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.DrawGlobe()
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
