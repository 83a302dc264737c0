package overlay

import "image/color"

type annotatorConfig struct {
	width, height int
	radius        int
	color         color.RGBA
}

// AnnotatorBuilderOption is a functional option for configuring an Annotator.
type AnnotatorBuilderOption func(c *annotatorConfig)

// WithSize sets the layer dimensions. Non-positive values are ignored.
//
// Parameters:
//   - width: layer width in pixels
//   - height: layer height in pixels
//
// Returns:
//   - AnnotatorBuilderOption: option function to apply
func WithSize(width, height int) AnnotatorBuilderOption {
	return func(c *annotatorConfig) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithMarkerRadius sets the marker circle radius in layer pixels.
//
// Parameters:
//   - radius: circle radius
//
// Returns:
//   - AnnotatorBuilderOption: option function to apply
func WithMarkerRadius(radius int) AnnotatorBuilderOption {
	return func(c *annotatorConfig) {
		c.radius = radius
	}
}

// WithMarkerColor sets the marker fill color.
//
// Parameters:
//   - col: fill color
//
// Returns:
//   - AnnotatorBuilderOption: option function to apply
func WithMarkerColor(col color.RGBA) AnnotatorBuilderOption {
	return func(c *annotatorConfig) {
		c.color = col
	}
}
