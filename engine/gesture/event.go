// Package gesture turns raw pointer events into globe rotation, zoom and pick requests.
package gesture

import "math"

// Action is the kind of a pointer event.
type Action int

const (
	// ActionDown is the first pointer of a new touch sequence going down.
	ActionDown Action = iota
	// ActionPointerDown is an additional pointer going down while others are held.
	ActionPointerDown
	// ActionMove reports new positions for the held pointers.
	ActionMove
	// ActionPointerUp is one pointer lifting while at least one other stays down.
	ActionPointerUp
	// ActionUp is the last pointer lifting, ending the touch sequence.
	ActionUp
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionPointerDown:
		return "pointer_down"
	case ActionMove:
		return "move"
	case ActionPointerUp:
		return "pointer_up"
	case ActionUp:
		return "up"
	default:
		return "unknown"
	}
}

// Pointer is one contact point in pixels, origin at the top-left of the viewport.
type Pointer struct {
	ID int
	X  float64
	Y  float64
}

// PointerEvent carries an action and the ordered set of pointers it applies to.
// For ActionPointerUp and ActionUp the set still includes the lifting pointer.
type PointerEvent struct {
	Action   Action
	Pointers []Pointer
	// Changed is the index in Pointers of the pointer that went down or up for ActionPointerDown
	// and ActionPointerUp.
	Changed int
}

// Distance returns the Euclidean distance between two pointers.
func Distance(a, b Pointer) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SyntheticPinch expands a single zoom step, such as a mouse wheel notch, into a complete two-pointer
// touch sequence centered on (cx, cy). A positive delta spreads the pointers apart (zoom in), a
// negative delta pinches them together (zoom out). The sequence always ends with ActionUp so it
// never triggers a pick.
//
// Parameters:
//   - cx, cy: center of the pinch in pixels
//   - delta: change in pointer separation in pixels, sign selects the direction
//
// Returns:
//   - []PointerEvent: Down, PointerDown, Move, PointerUp and Up events in order, or nil if delta is zero
func SyntheticPinch(cx, cy, delta float64) []PointerEvent {
	if delta == 0 {
		return nil
	}
	const base = 100.0
	start := base
	end := math.Max(base+delta, 1)

	first := Pointer{ID: 0, X: cx - start/2, Y: cy}
	second := Pointer{ID: 1, X: cx + start/2, Y: cy}
	movedFirst := Pointer{ID: 0, X: cx - end/2, Y: cy}
	movedSecond := Pointer{ID: 1, X: cx + end/2, Y: cy}

	return []PointerEvent{
		{Action: ActionDown, Pointers: []Pointer{first}},
		{Action: ActionPointerDown, Pointers: []Pointer{first, second}, Changed: 1},
		{Action: ActionMove, Pointers: []Pointer{movedFirst, movedSecond}},
		{Action: ActionPointerUp, Pointers: []Pointer{movedFirst, movedSecond}, Changed: 1},
		{Action: ActionUp, Pointers: []Pointer{movedFirst}},
	}
}
