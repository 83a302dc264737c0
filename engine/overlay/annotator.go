// Package overlay owns the pixel layer drawn over the globe's map texture and the text display that
// shows picked coordinates.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
)

const (
	// DefaultWidth is the overlay layer width in pixels.
	DefaultWidth = 1920
	// DefaultHeight is the overlay layer height in pixels.
	DefaultHeight = 960
	// DefaultMarkerRadius is the marker circle radius in overlay pixels.
	DefaultMarkerRadius = 7
)

// Annotator holds a transparent layer the size of the map texture with at most one marker on it.
// Painting a new marker replaces the previous one.
type Annotator interface {
	// PaintMarker clears the layer and draws the marker centered at a normalized map coordinate.
	//
	// Parameters:
	//   - u: horizontal position in [0, 1], 0 at the left edge
	//   - v: vertical position in [0, 1], 0 at the top edge
	PaintMarker(u, v float64)

	// Clear removes the marker.
	Clear()

	// Marker returns the marker center in layer pixels.
	//
	// Returns:
	//   - x, y: marker center
	//   - ok: false when no marker is painted
	Marker() (x, y int, ok bool)

	// Version returns a counter that increases every time the layer changes. Renderers compare it
	// with the version they last uploaded.
	//
	// Returns:
	//   - uint64: the layer version
	Version() uint64

	// Size returns the layer dimensions.
	//
	// Returns:
	//   - width, height: layer size in pixels
	Size() (width, height int)

	// Layer returns a copy of the overlay layer.
	//
	// Returns:
	//   - *image.RGBA: the transparent layer with the marker drawn on it
	Layer() *image.RGBA

	// Composite draws the base map and then the marker, scaled to the base map's size, into a new image.
	//
	// Parameters:
	//   - base: the map image
	//
	// Returns:
	//   - *image.RGBA: the composited texture with a zero origin
	Composite(base image.Image) *image.RGBA
}

type annotatorImpl struct {
	mu *sync.Mutex

	layer   *image.RGBA
	radius  int
	color   color.RGBA
	version uint64

	hasMarker        bool
	markerU, markerV float64
	markerX, markerY int
}

var _ Annotator = &annotatorImpl{}

// NewAnnotator creates an empty annotator layer.
//
// Parameters:
//   - options: functional options to configure the layer
//
// Returns:
//   - Annotator: the configured annotator
func NewAnnotator(options ...AnnotatorBuilderOption) Annotator {
	cfg := &annotatorConfig{
		width:  DefaultWidth,
		height: DefaultHeight,
		radius: DefaultMarkerRadius,
		color:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	for _, opt := range options {
		opt(cfg)
	}
	return &annotatorImpl{
		mu:     &sync.Mutex{},
		layer:  image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height)),
		radius: cfg.radius,
		color:  cfg.color,
	}
}

func (a *annotatorImpl) PaintMarker(u, v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.reset()
	b := a.layer.Bounds()
	a.markerU, a.markerV = u, v
	a.markerX = int(u * float64(b.Dx()))
	a.markerY = int(v * float64(b.Dy()))
	a.hasMarker = true
	fillCircle(a.layer, a.markerX, a.markerY, a.radius, a.color)
	a.version++
}

func (a *annotatorImpl) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.hasMarker {
		return
	}
	a.reset()
	a.version++
}

func (a *annotatorImpl) Marker() (x, y int, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.markerX, a.markerY, a.hasMarker
}

func (a *annotatorImpl) Version() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.version
}

func (a *annotatorImpl) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b := a.layer.Bounds()
	return b.Dx(), b.Dy()
}

func (a *annotatorImpl) Layer() *image.RGBA {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := image.NewRGBA(a.layer.Bounds())
	copy(out.Pix, a.layer.Pix)
	return out
}

func (a *annotatorImpl) Composite(base image.Image) *image.RGBA {
	a.mu.Lock()
	defer a.mu.Unlock()

	bb := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	draw.Draw(out, out.Bounds(), base, bb.Min, draw.Src)

	if !a.hasMarker {
		return out
	}
	lb := a.layer.Bounds()
	if lb.Eq(out.Bounds()) {
		draw.Draw(out, out.Bounds(), a.layer, image.Point{}, draw.Over)
		return out
	}

	// Redraw the marker at the base map's resolution instead of resampling the layer.
	scale := float64(bb.Dx()) / float64(lb.Dx())
	radius := max(int(float64(a.radius)*scale+0.5), 1)
	fillCircle(out, int(a.markerU*float64(bb.Dx())), int(a.markerV*float64(bb.Dy())), radius, a.color)
	return out
}

// reset zeroes the layer. Caller must hold the mutex.
func (a *annotatorImpl) reset() {
	clear(a.layer.Pix)
	a.hasMarker = false
	a.markerX, a.markerY = 0, 0
}

// fillCircle paints a filled circle, clipped to the image bounds.
func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	r2 := radius * radius
	rect := image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1).Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dy := y - cy
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
