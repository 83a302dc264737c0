package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pick struct{ x, y float64 }

type fakeTarget struct {
	yawVelocity, pitchVelocity float64
	velocityCalls              int
	zoom                       float64
	picks                      []pick
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{zoom: 1}
}

func (f *fakeTarget) SetVelocity(yaw, pitch float64) {
	f.yawVelocity, f.pitchVelocity = yaw, pitch
	f.velocityCalls++
}

func (f *fakeTarget) ZoomScale() float64 { return f.zoom }

func (f *fakeTarget) SetZoomScale(scale float64) { f.zoom = scale }

func (f *fakeTarget) Pick(x, y float64) { f.picks = append(f.picks, pick{x, y}) }

func one(id int, x, y float64) []Pointer {
	return []Pointer{{ID: id, X: x, Y: y}}
}

func two(x0, x1 float64) []Pointer {
	return []Pointer{{ID: 0, X: x0, Y: 100}, {ID: 1, X: x1, Y: 100}}
}

func TestTapPicksOnce(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 120, 80)})
	in.Handle(PointerEvent{Action: ActionUp, Pointers: one(0, 120, 80)})

	require.Len(t, target.picks, 1)
	assert.Equal(t, pick{120, 80}, target.picks[0])
	assert.False(t, in.MovementDetected())
}

func TestStationaryMoveStillPicks(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 120, 80)})
	in.Handle(PointerEvent{Action: ActionMove, Pointers: one(0, 120, 80)})
	in.Handle(PointerEvent{Action: ActionUp, Pointers: one(0, 120, 80)})

	assert.Len(t, target.picks, 1)
}

func TestDragSetsVelocityAndNeverPicks(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionMove, Pointers: one(0, 90, 120)})

	assert.InDelta(t, 2, target.yawVelocity, 1e-12)
	assert.InDelta(t, -4, target.pitchVelocity, 1e-12)
	assert.True(t, in.MovementDetected())

	in.Handle(PointerEvent{Action: ActionUp, Pointers: one(0, 90, 120)})
	assert.Empty(t, target.picks)
	assert.False(t, in.MovementDetected())
}

func TestDragVelocityScalesWithZoom(t *testing.T) {
	target := newFakeTarget()
	target.zoom = 0.5
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionMove, Pointers: one(0, 80, 100)})

	assert.InDelta(t, 2, target.yawVelocity, 1e-12)
	assert.Zero(t, target.pitchVelocity)
}

func TestPinchApartZoomsIn(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionPointerDown, Pointers: two(100, 200), Changed: 1})
	for i := range 10 {
		in.Handle(PointerEvent{Action: ActionMove, Pointers: two(100, 210+float64(i)*10)})
	}

	assert.InDelta(t, 1-10*DefaultZoomStep, target.zoom, 1e-9)

	for i := range 100 {
		in.Handle(PointerEvent{Action: ActionMove, Pointers: two(100, 310+float64(i)*10)})
	}
	assert.Equal(t, DefaultMinZoom, target.zoom)
}

func TestPinchTogetherZoomsOutToBound(t *testing.T) {
	target := newFakeTarget()
	target.zoom = 0.5
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionPointerDown, Pointers: two(100, 600), Changed: 1})
	in.Handle(PointerEvent{Action: ActionMove, Pointers: two(100, 590)})
	assert.InDelta(t, 0.53, target.zoom, 1e-9)

	for i := range 50 {
		in.Handle(PointerEvent{Action: ActionMove, Pointers: two(100, 580-float64(i)*5)})
	}
	assert.Equal(t, DefaultMaxZoom, target.zoom)
}

func TestPinchNeverPicks(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionPointerDown, Pointers: two(100, 200), Changed: 1})
	in.Handle(PointerEvent{Action: ActionPointerUp, Pointers: two(100, 200), Changed: 1})
	in.Handle(PointerEvent{Action: ActionUp, Pointers: one(0, 100, 100)})

	assert.Empty(t, target.picks)
}

func TestPointerUpSuppressesNextDelta(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionPointerDown, Pointers: two(100, 400), Changed: 1})
	in.Handle(PointerEvent{Action: ActionMove, Pointers: two(100, 420)})
	// The first pointer lifts; the survivor is far from the last tracked position.
	in.Handle(PointerEvent{Action: ActionPointerUp, Pointers: two(100, 420), Changed: 0})
	assert.Equal(t, []int{1}, in.ActivePointers())

	in.Handle(PointerEvent{Action: ActionMove, Pointers: one(1, 420, 100)})
	assert.Zero(t, target.velocityCalls, "suppressed move must not produce a jump")

	in.Handle(PointerEvent{Action: ActionMove, Pointers: one(1, 415, 100)})
	assert.Equal(t, 1, target.velocityCalls)
	assert.InDelta(t, 1*target.zoom, target.yawVelocity, 1e-12)
}

func TestMovementResetsPerSequence(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 100, 100)})
	in.Handle(PointerEvent{Action: ActionMove, Pointers: one(0, 150, 100)})
	in.Handle(PointerEvent{Action: ActionUp, Pointers: one(0, 150, 100)})

	in.Handle(PointerEvent{Action: ActionDown, Pointers: one(0, 30, 40)})
	in.Handle(PointerEvent{Action: ActionUp, Pointers: one(0, 30, 40)})

	require.Len(t, target.picks, 1)
	assert.Equal(t, pick{30, 40}, target.picks[0])
}

func TestMeaninglessEventsAreIgnored(t *testing.T) {
	target := newFakeTarget()
	in := NewInterpreter(target)

	three := []Pointer{{ID: 0}, {ID: 1, X: 10}, {ID: 2, X: 20}}
	events := []PointerEvent{
		{Action: ActionDown},
		{Action: ActionPointerDown, Pointers: one(0, 1, 1)},
		{Action: ActionMove},
		{Action: ActionMove, Pointers: three},
		{Action: Action(42), Pointers: one(0, 1, 1)},
		{Action: ActionPointerUp, Changed: 3},
	}
	for _, ev := range events {
		assert.NotPanics(t, func() { in.Handle(ev) })
	}
	assert.Zero(t, target.velocityCalls)
	assert.Equal(t, 1.0, target.zoom)
	assert.Empty(t, target.picks)
}

func TestSyntheticPinch(t *testing.T) {
	assert.Nil(t, SyntheticPinch(10, 10, 0))

	target := newFakeTarget()
	in := NewInterpreter(target)
	for _, ev := range SyntheticPinch(400, 300, 20) {
		in.Handle(ev)
	}
	assert.InDelta(t, 1-DefaultZoomStep, target.zoom, 1e-9)
	assert.Empty(t, target.picks)
	assert.Empty(t, in.ActivePointers())

	for _, ev := range SyntheticPinch(400, 300, -20) {
		in.Handle(ev)
	}
	assert.InDelta(t, 1.0, target.zoom, 1e-9)

	seq := SyntheticPinch(0, 0, -500)
	require.Len(t, seq, 5)
	assert.Greater(t, Distance(seq[2].Pointers[0], seq[2].Pointers[1]), 0.0)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "pointer_up", ActionPointerUp.String())
	assert.Equal(t, "unknown", Action(99).String())
}
