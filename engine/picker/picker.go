// Package picker resolves screen positions to geographic coordinates on the rotating globe.
package picker

import (
	"math"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

const (
	// DefaultLongitudeOffset aligns world longitude zero with the map texture's origin, in degrees.
	DefaultLongitudeOffset = -90.0
	// DefaultNorthPoleBand is the angular margin below the north pole without a marker, in radians.
	DefaultNorthPoleBand = 0.3
	// DefaultSouthPoleBand is the angular margin above the south pole without a marker, in radians.
	DefaultSouthPoleBand = 0.4
)

// Ray is a half-line in world space. Direction need not be normalized.
type Ray struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Picker casts rays from screen positions through the camera and intersects them with the globe.
type Picker interface {
	// Radius returns the radius of the sphere rays are intersected with.
	//
	// Returns:
	//   - float32: the globe radius
	Radius() float32

	// ScreenRay unprojects a screen position into a world-space ray starting at the eye.
	//
	// Parameters:
	//   - x, y: position in pixels, origin at the top-left of the viewport
	//   - cam: camera supplying the viewport and the inverse matrices
	//
	// Returns:
	//   - Ray: the world-space ray
	//   - bool: false if the inverse projection maps the position to infinity
	ScreenRay(x, y float64, cam camera.Camera) (Ray, bool)

	// Pick resolves a screen position to a point on the globe.
	//
	// Parameters:
	//   - x, y: position in pixels, origin at the top-left of the viewport
	//   - cam: camera supplying the viewport and the inverse matrices
	//   - yawDeg: the globe's current yaw in degrees
	//
	// Returns:
	//   - Result: the pick result, Valid=false on a miss
	Pick(x, y float64, cam camera.Camera, yawDeg float64) Result
}

type pickerImpl struct {
	radius          float32
	longitudeOffset float64
	northPoleBand   float64
	southPoleBand   float64
}

var _ Picker = &pickerImpl{}

// NewPicker creates a Picker for a globe of the default radius.
//
// Parameters:
//   - options: functional options to configure the picker
//
// Returns:
//   - Picker: the configured picker
func NewPicker(options ...PickerBuilderOption) Picker {
	p := &pickerImpl{
		radius:          2,
		longitudeOffset: DefaultLongitudeOffset,
		northPoleBand:   DefaultNorthPoleBand,
		southPoleBand:   DefaultSouthPoleBand,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pickerImpl) Radius() float32 {
	return p.radius
}

func (p *pickerImpl) ScreenRay(x, y float64, cam camera.Camera) (Ray, bool) {
	width, height := cam.Viewport()
	ndcX := float32(2*x/float64(width) - 1)
	ndcY := float32(1 - 2*y/float64(height))

	near := cam.InverseProjectionMatrix().Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	if near.W() == 0 {
		return Ray{}, false
	}
	// A near-plane point seen from the eye is also the view-space direction through it.
	dir := near.Vec3().Mul(1 / near.W())

	invView := cam.InverseViewMatrix()
	worldDir := invView.Mul4x1(dir.Vec4(0)).Vec3()
	origin := invView.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()

	return Ray{Origin: toR3(origin), Direction: toR3(worldDir)}, true
}

func (p *pickerImpl) Pick(x, y float64, cam camera.Camera, yawDeg float64) Result {
	ray, ok := p.ScreenRay(x, y, cam)
	if !ok {
		return Result{}
	}
	t, hit := IntersectSphere(ray, float64(p.radius))
	if !hit {
		return Result{}
	}

	point := ray.At(t)
	r := float64(p.radius)
	lat := math.Asin(common.Clamp(point.Y/r, -1, 1))
	lon := math.Atan2(point.X, point.Z)
	lon = common.WrapRadians(lon + (yawDeg+p.longitudeOffset)*math.Pi/180)

	res := Result{
		Valid: true,
		Point: point,
		Polar: Polar{Longitude: s1.Angle(lon), Latitude: s1.Angle(lat)},
	}
	if lat < math.Pi/2-p.northPoleBand && lat > -math.Pi/2+p.southPoleBand {
		res.HasMarker = true
		res.MapCoord = MapCoord{
			U: lon / (2 * math.Pi),
			V: (math.Pi/2 - lat) / math.Pi,
		}
	}
	return res
}

// IntersectSphere intersects a ray with a sphere centered at the world origin.
//
// Parameters:
//   - ray: the ray to test
//   - radius: sphere radius
//
// Returns:
//   - float64: the smallest non-negative ray parameter of an intersection
//   - bool: false if the ray misses the sphere or the sphere lies behind it
func IntersectSphere(ray Ray, radius float64) (float64, bool) {
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return 0, false
	}
	b := 2 * ray.Origin.Dot(ray.Direction)
	c := ray.Origin.Dot(ray.Origin) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

func toR3(v mgl32.Vec3) r3.Vector {
	return r3.Vector{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
}
