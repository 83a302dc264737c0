package gesture

import "slices"

// Tracker turns per-frame snapshots of held pointers into the PointerEvent sequence the Interpreter
// expects. Front ends that poll input, rather than receiving touch callbacks, feed it the pointers
// that are down each frame.
//
// The zero value is ready to use. A Tracker is not safe for concurrent use.
type Tracker struct {
	active []Pointer
}

// Update diffs the held pointers against the previous snapshot. Lifted pointers are reported first,
// then new pointers, then a single ActionMove if any pointer that stayed down changed position.
//
// Parameters:
//   - held: pointers currently down, in any order
//
// Returns:
//   - []PointerEvent: events in dispatch order, nil when nothing changed
func (t *Tracker) Update(held []Pointer) []PointerEvent {
	var events []PointerEvent

	for i := 0; i < len(t.active); {
		if slices.ContainsFunc(held, func(p Pointer) bool { return p.ID == t.active[i].ID }) {
			i++
			continue
		}
		action := ActionPointerUp
		if len(t.active) == 1 {
			action = ActionUp
		}
		events = append(events, PointerEvent{Action: action, Pointers: slices.Clone(t.active), Changed: i})
		t.active = slices.Delete(t.active, i, i+1)
	}

	moved := false
	for i, a := range t.active {
		for _, p := range held {
			if p.ID == a.ID && (p.X != a.X || p.Y != a.Y) {
				t.active[i] = p
				moved = true
			}
		}
	}

	for _, p := range held {
		if slices.ContainsFunc(t.active, func(a Pointer) bool { return a.ID == p.ID }) {
			continue
		}
		t.active = append(t.active, p)
		if len(t.active) == 1 {
			events = append(events, PointerEvent{Action: ActionDown, Pointers: slices.Clone(t.active)})
			continue
		}
		events = append(events, PointerEvent{Action: ActionPointerDown, Pointers: slices.Clone(t.active), Changed: len(t.active) - 1})
	}

	if moved {
		events = append(events, PointerEvent{Action: ActionMove, Pointers: slices.Clone(t.active)})
	}
	return events
}

// Active reports how many pointers the tracker considers held.
func (t *Tracker) Active() int {
	return len(t.active)
}
