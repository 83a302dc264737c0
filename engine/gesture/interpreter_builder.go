package gesture

import "log/slog"

// InterpreterBuilderOption is a functional option for configuring an Interpreter.
type InterpreterBuilderOption func(in *interpreterImpl)

// WithDragDivisor sets the number of pixels of drag per degree-per-frame of rotation velocity.
//
// Parameters:
//   - divisor: drag divisor, must be positive
//
// Returns:
//   - InterpreterBuilderOption: option function to apply
func WithDragDivisor(divisor float64) InterpreterBuilderOption {
	return func(in *interpreterImpl) {
		in.dragDivisor = divisor
	}
}

// WithZoomStep sets the zoom scale change applied per pinch move.
//
// Parameters:
//   - step: zoom scale increment
//
// Returns:
//   - InterpreterBuilderOption: option function to apply
func WithZoomStep(step float64) InterpreterBuilderOption {
	return func(in *interpreterImpl) {
		in.zoomStep = step
	}
}

// WithZoomBounds sets the range pinch zoom is clamped to.
//
// Parameters:
//   - lo: smallest zoom scale
//   - hi: largest zoom scale
//
// Returns:
//   - InterpreterBuilderOption: option function to apply
func WithZoomBounds(lo, hi float64) InterpreterBuilderOption {
	return func(in *interpreterImpl) {
		in.minZoom = lo
		in.maxZoom = hi
	}
}

// WithLogger sets the logger used for ignored events.
//
// Parameters:
//   - logger: structured logger
//
// Returns:
//   - InterpreterBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) InterpreterBuilderOption {
	return func(in *interpreterImpl) {
		if logger != nil {
			in.logger = logger
		}
	}
}
