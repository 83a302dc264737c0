package gesture

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-globe/common"
)

const (
	// DefaultDragDivisor converts pixels of drag into degrees per frame of rotation velocity.
	DefaultDragDivisor = 5.0
	// DefaultZoomStep is the zoom scale change per pinch move.
	DefaultZoomStep = 0.03
	// DefaultMinZoom is the lower zoom scale bound.
	DefaultMinZoom = 0.25
	// DefaultMaxZoom is the upper zoom scale bound.
	DefaultMaxZoom = 1.0
)

// Target receives the interpreter's output. The globe implements it over its orbit controller,
// camera and picker.
type Target interface {
	// SetVelocity replaces the rotation velocities in degrees per frame.
	SetVelocity(yaw, pitch float64)
	// ZoomScale returns the current zoom scale.
	ZoomScale() float64
	// SetZoomScale applies a new zoom scale.
	SetZoomScale(scale float64)
	// Pick resolves a tap at a screen position.
	Pick(x, y float64)
}

// Interpreter is a state machine over pointer events. A single-pointer drag sets rotation velocity,
// a two-pointer pinch steps the zoom and a tap without movement picks.
type Interpreter interface {
	// Handle advances the state machine by one event. Combinations of action and pointer count that
	// mean nothing are ignored.
	//
	// Parameters:
	//   - ev: the pointer event
	Handle(ev PointerEvent)

	// MovementDetected reports whether the current touch sequence has dragged or pinched.
	//
	// Returns:
	//   - bool: true once a nonzero drag delta or any pinch was seen
	MovementDetected() bool

	// ActivePointers returns the pointer ids held in the current sequence, in event order.
	//
	// Returns:
	//   - []int: pointer ids, empty between sequences
	ActivePointers() []int

	// Reset clears all sequence state.
	Reset()
}

type interpreterImpl struct {
	target Target
	logger *slog.Logger

	dragDivisor float64
	zoomStep    float64
	minZoom     float64
	maxZoom     float64

	activePointers    []int
	lastX, lastY      float64
	lastPinchDistance float64
	suppressNextDelta bool
	movementDetected  bool
}

var _ Interpreter = &interpreterImpl{}

// NewInterpreter creates an Interpreter that drives target.
// The interpreter is not safe for concurrent use; the owner serializes Handle calls.
//
// Parameters:
//   - target: receiver of velocity, zoom and pick requests
//   - options: functional options to configure the interpreter
//
// Returns:
//   - Interpreter: the configured interpreter
func NewInterpreter(target Target, options ...InterpreterBuilderOption) Interpreter {
	in := &interpreterImpl{
		target:      target,
		logger:      slog.Default(),
		dragDivisor: DefaultDragDivisor,
		zoomStep:    DefaultZoomStep,
		minZoom:     DefaultMinZoom,
		maxZoom:     DefaultMaxZoom,
	}
	for _, opt := range options {
		opt(in)
	}
	return in
}

func (in *interpreterImpl) Handle(ev PointerEvent) {
	n := len(ev.Pointers)
	switch {
	case ev.Action == ActionDown && n >= 1:
		in.Reset()
		in.lastX, in.lastY = ev.Pointers[0].X, ev.Pointers[0].Y
		in.trackPointers(ev.Pointers)

	case ev.Action == ActionPointerDown && n >= 2:
		in.movementDetected = true
		in.lastPinchDistance = Distance(ev.Pointers[0], ev.Pointers[1])
		in.trackPointers(ev.Pointers)

	case ev.Action == ActionMove && n == 1:
		in.drag(ev.Pointers[0])

	case ev.Action == ActionMove && n == 2:
		in.pinch(ev.Pointers[0], ev.Pointers[1])

	case ev.Action == ActionPointerUp:
		in.suppressNextDelta = true
		if ev.Changed >= 0 && ev.Changed < n {
			remaining := make([]Pointer, 0, n-1)
			remaining = append(remaining, ev.Pointers[:ev.Changed]...)
			remaining = append(remaining, ev.Pointers[ev.Changed+1:]...)
			in.trackPointers(remaining)
		}

	case ev.Action == ActionUp:
		if !in.movementDetected {
			in.target.Pick(in.lastX, in.lastY)
		}
		in.Reset()

	default:
		in.logger.Debug("ignoring pointer event", "action", ev.Action, "pointers", n)
	}
}

func (in *interpreterImpl) MovementDetected() bool {
	return in.movementDetected
}

func (in *interpreterImpl) ActivePointers() []int {
	return append([]int(nil), in.activePointers...)
}

func (in *interpreterImpl) Reset() {
	in.activePointers = in.activePointers[:0]
	in.lastPinchDistance = 0
	in.suppressNextDelta = false
	in.movementDetected = false
}

func (in *interpreterImpl) drag(p Pointer) {
	if in.suppressNextDelta {
		// The remaining pointer after a pinch may not be the one lastX/lastY tracked.
		in.suppressNextDelta = false
		in.lastX, in.lastY = p.X, p.Y
		return
	}

	dx := in.lastX - p.X
	dy := in.lastY - p.Y
	if dx != 0 || dy != 0 {
		in.movementDetected = true
	}

	zoom := in.target.ZoomScale()
	in.target.SetVelocity(dx/in.dragDivisor*zoom, dy/in.dragDivisor*zoom)
	in.lastX, in.lastY = p.X, p.Y
}

func (in *interpreterImpl) pinch(a, b Pointer) {
	in.movementDetected = true

	d := Distance(a, b)
	zoom := in.target.ZoomScale()
	if d < in.lastPinchDistance {
		zoom += in.zoomStep
	} else {
		zoom -= in.zoomStep
	}
	in.target.SetZoomScale(common.Clamp(zoom, in.minZoom, in.maxZoom))

	in.lastPinchDistance = d
	in.lastX, in.lastY = a.X, a.Y
}

func (in *interpreterImpl) trackPointers(pointers []Pointer) {
	in.activePointers = in.activePointers[:0]
	for _, p := range pointers {
		in.activePointers = append(in.activePointers, p.ID)
	}
}
