package globe

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-globe/engine/camera"
	"github.com/Carmen-Shannon/oxy-globe/engine/gesture"
	"github.com/Carmen-Shannon/oxy-globe/engine/mesh"
	"github.com/Carmen-Shannon/oxy-globe/engine/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textRecorder struct {
	shown []string
}

func (r *textRecorder) ShowText(s string) { r.shown = append(r.shown, s) }

func newTestGlobe(t *testing.T, options ...GlobeBuilderOption) (Globe, *textRecorder) {
	t.Helper()
	rec := &textRecorder{}
	g, err := NewGlobe(append([]GlobeBuilderOption{
		WithViewport(800, 600),
		WithSteps(8),
		WithTextDisplay(rec),
	}, options...)...)
	require.NoError(t, err)
	return g, rec
}

func tap(g Globe, x, y float64) {
	p := []gesture.Pointer{{ID: 0, X: x, Y: y}}
	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionDown, Pointers: p})
	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionUp, Pointers: p})
}

func TestTapAtCenterShowsInitialCoordinates(t *testing.T) {
	g, rec := newTestGlobe(t)

	tap(g, 400, 300)

	require.Len(t, rec.shown, 1)
	assert.Equal(t, "20.00°E; 16.00°N", rec.shown[0])

	x, y, ok := g.Annotator().Marker()
	require.True(t, ok)
	assert.InDelta(t, 1920*200.0/360, x, 1)
	assert.InDelta(t, 960*74.0/180, y, 1)
}

func TestTapOffGlobeClearsText(t *testing.T) {
	g, rec := newTestGlobe(t)

	tap(g, 2, 2)

	assert.Equal(t, []string{""}, rec.shown)
	_, _, ok := g.Annotator().Marker()
	assert.False(t, ok)
}

func TestDragRotatesWithoutPicking(t *testing.T) {
	g, rec := newTestGlobe(t)
	before := g.Frame().Yaw

	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionDown, Pointers: []gesture.Pointer{{X: 400, Y: 300}}})
	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionMove, Pointers: []gesture.Pointer{{X: 350, Y: 300}}})
	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionUp, Pointers: []gesture.Pointer{{X: 350, Y: 300}}})
	g.Tick()

	assert.Empty(t, rec.shown)
	// Dragging left gives a positive yaw velocity: 50 px / 5 * zoom 1 = 10, decayed once to 9.3.
	assert.InDelta(t, before+9.3, g.Frame().Yaw, 1e-9)
}

func TestInertiaComesToRest(t *testing.T) {
	g, _ := newTestGlobe(t)

	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionDown, Pointers: []gesture.Pointer{{X: 400, Y: 300}}})
	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionMove, Pointers: []gesture.Pointer{{X: 300, Y: 200}}})
	g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionUp, Pointers: []gesture.Pointer{{X: 300, Y: 200}}})

	for range 300 {
		g.Tick()
	}
	settled := g.Frame()
	g.Tick()
	assert.Equal(t, settled.Yaw, g.Frame().Yaw)
	assert.Equal(t, settled.Pitch, g.Frame().Pitch)
	assert.GreaterOrEqual(t, settled.Pitch, -45.0)
	assert.LessOrEqual(t, settled.Pitch, 45.0)
}

func TestPinchChangesZoom(t *testing.T) {
	g, rec := newTestGlobe(t)

	for _, ev := range gesture.SyntheticPinch(400, 300, 30) {
		g.HandlePointer(ev)
	}

	assert.InDelta(t, 0.97, g.Frame().ZoomScale, 1e-9)
	assert.Empty(t, rec.shown)
}

func TestResizeKeepsZoom(t *testing.T) {
	g, _ := newTestGlobe(t)
	for _, ev := range gesture.SyntheticPinch(400, 300, 30) {
		g.HandlePointer(ev)
	}

	g.Resize(1024, 768)

	f := g.Frame()
	assert.Equal(t, 1024, f.Width)
	assert.Equal(t, 768, f.Height)
	assert.InDelta(t, 0.97, f.ZoomScale, 1e-9)
}

func TestFrameComposesMVP(t *testing.T) {
	g, _ := newTestGlobe(t)
	f := g.Frame()

	expected := f.Projection.Mul4(f.View).Mul4(f.Model)
	assert.InDeltaSlice(t, expected[:], f.MVP[:], 1e-5)
	assert.Equal(t, 290.0, f.Yaw)
	assert.Equal(t, -16.0, f.Pitch)
}

func TestPickAfterRotationTracksYaw(t *testing.T) {
	g, _ := newTestGlobe(t, WithOrbitOptions(camera.WithYaw(110), camera.WithPitch(0)))

	res := g.Pick(400, 300)

	require.True(t, res.Valid)
	assert.InDelta(t, -160, res.Longitude(), 1e-2)
	assert.InDelta(t, 0, res.Latitude(), 1e-2)
}

func TestNewGlobeRejectsBadMesh(t *testing.T) {
	_, err := NewGlobe(WithSteps(1))
	assert.ErrorIs(t, err, mesh.ErrInvalidSteps)
}

func TestOrbitOptionsLeaveCallerSliceUntouched(t *testing.T) {
	options := make([]camera.OrbitControllerOption, 1, 8)
	options[0] = camera.WithYaw(10)
	spare := options[:cap(options)]

	for range 2 {
		g, _ := newTestGlobe(t, WithOrbitOptions(options...), WithOrbitOptions(camera.WithPitch(5)))
		assert.Equal(t, 10.0, g.Frame().Yaw)
		assert.Equal(t, 5.0, g.Frame().Pitch)
	}
	for i := 1; i < len(spare); i++ {
		assert.Nilf(t, spare[i], "spare slot %d was written", i)
	}
}

func TestConcurrentInputAndTicks(t *testing.T) {
	g, _ := newTestGlobe(t, WithTextDisplay(&overlay.Label{}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 200 {
			x := 300 + float64(i%50)
			g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionDown, Pointers: []gesture.Pointer{{X: x, Y: 300}}})
			g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionMove, Pointers: []gesture.Pointer{{X: x + 3, Y: 302}}})
			g.HandlePointer(gesture.PointerEvent{Action: gesture.ActionUp, Pointers: []gesture.Pointer{{X: x + 3, Y: 302}}})
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			g.Tick()
			_ = g.Frame()
		}
	}()
	wg.Wait()

	yaw := g.Frame().Yaw
	assert.GreaterOrEqual(t, yaw, 0.0)
	assert.Less(t, yaw, 360.0)
}
