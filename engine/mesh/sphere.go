// Package mesh generates the globe geometry: a UV sphere of non-indexed triangles with texture
// coordinates aligned to an equirectangular world map.
package mesh

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultRadius is the globe radius in world units.
	DefaultRadius float32 = 2
	// DefaultSteps is the number of latitude bands; longitude uses twice as many segments.
	DefaultSteps = 16
)

var (
	// ErrInvalidRadius is returned when the sphere radius is not positive.
	ErrInvalidRadius = errors.New("sphere radius must be positive")
	// ErrInvalidSteps is returned when the subdivision is too coarse to form a closed sphere.
	ErrInvalidSteps = errors.New("sphere steps must be at least 2")
)

// Sphere holds the immutable vertex streams of the globe mesh. Every three consecutive
// vertices form one triangle wound counter-clockwise when seen from outside.
//
// A vertex at latitude φ and texture longitude λ sits at r·(cosφ·cosλ, sinφ, -cosφ·sinλ)
// with texture coordinate (λ/2π, (π/2 - φ)/π), so a point picked at texture longitude λ
// samples the map column λ/2π.
type Sphere struct {
	Radius    float32
	Steps     int
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec4
	TexCoords []mgl32.Vec2
}

type sphereConfig struct {
	workers int
	color   mgl32.Vec4
}

// SphereOption is a functional option for configuring sphere generation.
type SphereOption func(*sphereConfig)

// WithWorkers sets how many pool workers build latitude bands concurrently.
//
// Parameters:
//   - n: worker count, values below 1 fall back to one worker
//
// Returns:
//   - SphereOption: option function to apply
func WithWorkers(n int) SphereOption {
	return func(c *sphereConfig) {
		c.workers = max(n, 1)
	}
}

// WithColor sets the per-vertex color multiplied with the texture.
//
// Parameters:
//   - color: RGBA color, default opaque white
//
// Returns:
//   - SphereOption: option function to apply
func WithColor(color mgl32.Vec4) SphereOption {
	return func(c *sphereConfig) {
		c.color = color
	}
}

// NewSphere builds a UV sphere with steps latitude bands and 2*steps longitude segments.
// Bands are generated in parallel on a dynamic worker pool; each band writes its own slice range.
//
// Parameters:
//   - radius: sphere radius, must be positive
//   - steps: number of latitude bands, must be at least 2
//   - options: functional options to configure generation
//
// Returns:
//   - *Sphere: the generated mesh
//   - error: ErrInvalidRadius or ErrInvalidSteps for bad input
func NewSphere(radius float32, steps int, options ...SphereOption) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	cfg := &sphereConfig{
		workers: runtime.NumCPU(),
		color:   mgl32.Vec4{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(cfg)
	}

	segments := steps * 2
	perBand := segments * 6
	total := steps * perBand
	s := &Sphere{
		Radius:    radius,
		Steps:     steps,
		Positions: make([]mgl32.Vec3, total),
		Colors:    make([]mgl32.Vec4, total),
		TexCoords: make([]mgl32.Vec2, total),
	}

	pool := worker.NewDynamicWorkerPool(min(cfg.workers, steps), steps, 1*time.Second)
	var wg sync.WaitGroup
	for band := range steps {
		wg.Add(1)
		b := band
		pool.SubmitTask(worker.Task{
			ID: b,
			Do: func() (any, error) {
				defer wg.Done()
				s.buildBand(b, segments, cfg.color)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return s, nil
}

// TriangleCount returns the number of triangles in the mesh.
//
// Returns:
//   - int: vertex count divided by three
func (s *Sphere) TriangleCount() int {
	return len(s.Positions) / 3
}

// VertexCount returns the number of vertices in the mesh.
//
// Returns:
//   - int: the vertex count
func (s *Sphere) VertexCount() int {
	return len(s.Positions)
}

// buildBand fills the triangles of one latitude band, north to south.
func (s *Sphere) buildBand(band, segments int, color mgl32.Vec4) {
	steps := s.Steps
	v0 := float32(band) / float32(steps)
	v1 := float32(band+1) / float32(steps)
	offset := band * segments * 6

	for seg := range segments {
		u0 := float32(seg) / float32(segments)
		u1 := float32(seg+1) / float32(segments)

		a := s.vertex(u0, v0)
		b := s.vertex(u0, v1)
		c := s.vertex(u1, v1)
		d := s.vertex(u1, v0)

		quad := [6]mgl32.Vec2{
			{u0, v0}, {u0, v1}, {u1, v1},
			{u0, v0}, {u1, v1}, {u1, v0},
		}
		positions := [6]mgl32.Vec3{a, b, c, a, c, d}

		i := offset + seg*6
		copy(s.Positions[i:i+6], positions[:])
		copy(s.TexCoords[i:i+6], quad[:])
		for k := range 6 {
			s.Colors[i+k] = color
		}
	}
}

// vertex maps a texture coordinate to its position on the sphere.
func (s *Sphere) vertex(u, v float32) mgl32.Vec3 {
	lon := float64(u) * 2 * math.Pi
	lat := math.Pi/2 - float64(v)*math.Pi
	r := float64(s.Radius)
	return mgl32.Vec3{
		float32(r * math.Cos(lat) * math.Cos(lon)),
		float32(r * math.Sin(lat)),
		float32(-r * math.Cos(lat) * math.Sin(lon)),
	}
}
