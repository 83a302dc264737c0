package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actions(events []PointerEvent) []Action {
	out := make([]Action, len(events))
	for i, ev := range events {
		out[i] = ev.Action
	}
	return out
}

func TestTrackerTap(t *testing.T) {
	var tr Tracker

	down := tr.Update([]Pointer{{ID: 7, X: 10, Y: 20}})
	require.Equal(t, []Action{ActionDown}, actions(down))
	assert.Equal(t, []Pointer{{ID: 7, X: 10, Y: 20}}, down[0].Pointers)

	assert.Nil(t, tr.Update([]Pointer{{ID: 7, X: 10, Y: 20}}), "holding still is silent")

	up := tr.Update(nil)
	require.Equal(t, []Action{ActionUp}, actions(up))
	assert.Equal(t, []Pointer{{ID: 7, X: 10, Y: 20}}, up[0].Pointers)
	assert.Zero(t, tr.Active())
}

func TestTrackerMove(t *testing.T) {
	var tr Tracker
	tr.Update([]Pointer{{ID: 1, X: 0, Y: 0}})

	events := tr.Update([]Pointer{{ID: 1, X: 5, Y: -3}})

	require.Equal(t, []Action{ActionMove}, actions(events))
	assert.Equal(t, []Pointer{{ID: 1, X: 5, Y: -3}}, events[0].Pointers)
}

func TestTrackerSecondPointer(t *testing.T) {
	var tr Tracker
	tr.Update([]Pointer{{ID: 1, X: 0, Y: 0}})

	events := tr.Update([]Pointer{{ID: 2, X: 50, Y: 0}, {ID: 1, X: 0, Y: 0}})
	require.Equal(t, []Action{ActionPointerDown}, actions(events))
	assert.Equal(t, 1, events[0].Changed)
	assert.Equal(t, []Pointer{{ID: 1}, {ID: 2, X: 50}}, events[0].Pointers, "held order is kept")

	events = tr.Update([]Pointer{{ID: 2, X: 60, Y: 0}})
	require.Equal(t, []Action{ActionPointerUp, ActionMove}, actions(events))
	assert.Equal(t, 0, events[0].Changed)
	assert.Equal(t, []Pointer{{ID: 1}, {ID: 2, X: 50}}, events[0].Pointers, "lift reports last known positions")
	assert.Equal(t, []Pointer{{ID: 2, X: 60}}, events[1].Pointers)
}

func TestTrackerAllLiftAtOnce(t *testing.T) {
	var tr Tracker
	tr.Update([]Pointer{{ID: 1}, {ID: 2, X: 10}})

	events := tr.Update(nil)

	require.Equal(t, []Action{ActionPointerUp, ActionUp}, actions(events))
	assert.Len(t, events[0].Pointers, 2)
	assert.Len(t, events[1].Pointers, 1)
}

func TestTrackerDrivesInterpreter(t *testing.T) {
	target := &fakeTarget{zoom: 1}
	in := NewInterpreter(target)
	var tr Tracker

	feed := func(held ...Pointer) {
		for _, ev := range tr.Update(held) {
			in.Handle(ev)
		}
	}

	feed(Pointer{ID: 0, X: 100, Y: 100})
	feed()
	require.Len(t, target.picks, 1)

	feed(Pointer{ID: 0, X: 100, Y: 100})
	feed(Pointer{ID: 0, X: 90, Y: 100})
	feed()
	assert.Len(t, target.picks, 1, "a drag does not pick")
	assert.InDelta(t, 2, target.yawVelocity, 1e-9)
}
