// Package touch runs the globe inside an ebiten game loop. Touches and the left mouse button become
// pointers, the mouse wheel becomes a pinch, and the globe is drawn with CPU-projected triangles, so
// it runs anywhere ebiten does, mobile included.
package touch

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/Carmen-Shannon/oxy-globe/engine/gesture"
	"github.com/Carmen-Shannon/oxy-globe/engine/globe"
	"github.com/Carmen-Shannon/oxy-globe/engine/mesh"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// MousePointerID is the pointer ID reported for the left mouse button.
	MousePointerID = -1
	// DefaultWheelStep is the synthetic pinch distance, in pixels, for one wheel notch.
	DefaultWheelStep = 30.0
)

// Shell implements ebiten.Game for a globe.
type Shell struct {
	globe  globe.Globe
	base   *image.RGBA
	label  *overlay.Label
	logger *slog.Logger

	title      string
	tickRate   int
	wheelStep  float64
	background color.RGBA

	tracker  gesture.Tracker
	touchIDs []ebiten.TouchID
	held     []gesture.Pointer

	texture        *ebiten.Image
	textureVersion uint64
	projected      []mesh.ScreenVertex
	vertices       []ebiten.Vertex
	indices        []uint16

	width, height int
}

var _ ebiten.Game = &Shell{}

// NewShell creates an ebiten shell for g.
//
// Parameters:
//   - g: the globe to drive
//   - base: the equirectangular base map the marker layer is composited onto
//   - label: the text display the globe writes picks to, may be nil
//   - options: functional options to configure the shell
//
// Returns:
//   - *Shell: the shell, ready for Run
func NewShell(g globe.Globe, base *image.RGBA, label *overlay.Label, options ...ShellBuilderOption) *Shell {
	s := &Shell{
		globe:      g,
		base:       base,
		label:      label,
		logger:     slog.Default(),
		title:      "Globe",
		tickRate:   60,
		wheelStep:  DefaultWheelStep,
		background: color.RGBA{A: 255},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Run opens the window and blocks until it is closed or Escape is pressed.
//
// Parameters:
//   - width, height: initial window size
//
// Returns:
//   - error: failure reported by ebiten
func (s *Shell) Run(width, height int) error {
	ebiten.SetWindowTitle(s.title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.tickRate)
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("ebiten shell: %w", err)
	}
	return nil
}

// Update polls input, feeds the resulting events to the globe and advances the orbit one frame.
func (s *Shell) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s.held = s.held[:0]
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.held = append(s.held, gesture.Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.held = append(s.held, gesture.Pointer{ID: MousePointerID, X: float64(x), Y: float64(y)})
	}
	for _, ev := range s.tracker.Update(s.held) {
		s.globe.HandlePointer(ev)
	}

	// A wheel notch replays a whole pinch sequence, which would restart a sequence still in progress.
	if _, dy := ebiten.Wheel(); dy != 0 && s.tracker.Active() == 0 {
		x, y := ebiten.CursorPosition()
		for _, ev := range gesture.SyntheticPinch(float64(x), float64(y), dy*s.wheelStep) {
			s.globe.HandlePointer(ev)
		}
	}

	s.globe.Tick()
	return nil
}

// Draw renders the textured globe and the pick label.
func (s *Shell) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.syncTexture()

	frame := s.globe.Frame()
	s.projected = s.globe.Mesh().Project(frame.MVP, frame.Width, frame.Height, s.projected[:0])

	tb := s.texture.Bounds()
	tw, th := float32(tb.Dx()), float32(tb.Dy())
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for i, v := range s.projected {
		if i%3 == 0 && len(s.vertices)+3 > math.MaxUint16 {
			screen.DrawTriangles(s.vertices, s.indices, s.texture, op)
			s.vertices = s.vertices[:0]
			s.indices = s.indices[:0]
		}
		s.indices = append(s.indices, uint16(len(s.vertices)))
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   v.U * tw,
			SrcY:   v.V * th,
			ColorR: v.Color[0],
			ColorG: v.Color[1],
			ColorB: v.Color[2],
			ColorA: v.Color[3],
		})
	}
	if len(s.vertices) > 0 {
		screen.DrawTriangles(s.vertices, s.indices, s.texture, op)
	}

	if s.label != nil {
		if text, _ := s.label.Text(); text != "" {
			ebitenutil.DebugPrint(screen, text)
		}
	}
}

// Layout tracks the window size and resizes the globe's projection to match.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.globe.Resize(outsideWidth, outsideHeight)
		s.logger.Debug("viewport resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// syncTexture uploads the composited map whenever the marker layer changed since the last upload.
func (s *Shell) syncTexture() {
	annotator := s.globe.Annotator()
	version := annotator.Version()
	if s.texture != nil && version == s.textureVersion {
		return
	}

	composite := annotator.Composite(s.base)
	if s.texture == nil {
		b := composite.Bounds()
		s.texture = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.texture.WritePixels(composite.Pix)
	s.textureVersion = version
}
