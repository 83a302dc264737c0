package touch

import (
	"image/color"
	"log/slog"
)

// ShellBuilderOption is a functional option for configuring a Shell.
type ShellBuilderOption func(s *Shell)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - ShellBuilderOption: option function to apply
func WithTitle(title string) ShellBuilderOption {
	return func(s *Shell) {
		s.title = title
	}
}

// WithTickRate sets how many times per second Update runs. Values <= 0 keep the default of 60.
//
// Parameters:
//   - tps: updates per second
//
// Returns:
//   - ShellBuilderOption: option function to apply
func WithTickRate(tps int) ShellBuilderOption {
	return func(s *Shell) {
		if tps > 0 {
			s.tickRate = tps
		}
	}
}

// WithWheelStep sets the pinch distance one wheel notch simulates.
//
// Parameters:
//   - step: pointer separation change in pixels
//
// Returns:
//   - ShellBuilderOption: option function to apply
func WithWheelStep(step float64) ShellBuilderOption {
	return func(s *Shell) {
		s.wheelStep = step
	}
}

// WithBackground sets the clear color behind the globe.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - ShellBuilderOption: option function to apply
func WithBackground(c color.RGBA) ShellBuilderOption {
	return func(s *Shell) {
		s.background = c
	}
}

// WithLogger sets the structured logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - ShellBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) ShellBuilderOption {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}
