package picker

// PickerBuilderOption is a functional option for configuring a Picker.
type PickerBuilderOption func(p *pickerImpl)

// WithRadius sets the radius of the globe rays are intersected with.
//
// Parameters:
//   - radius: globe radius in world units
//
// Returns:
//   - PickerBuilderOption: option function to apply
func WithRadius(radius float32) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.radius = radius
	}
}

// WithLongitudeOffset sets the angle added to world longitude, on top of the yaw, to align it with
// the map texture.
//
// Parameters:
//   - deg: offset in degrees
//
// Returns:
//   - PickerBuilderOption: option function to apply
func WithLongitudeOffset(deg float64) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.longitudeOffset = deg
	}
}

// WithPoleBands sets the margins around each pole inside which no marker is placed.
//
// Parameters:
//   - north: margin below the north pole in radians
//   - south: margin above the south pole in radians
//
// Returns:
//   - PickerBuilderOption: option function to apply
func WithPoleBands(north, south float64) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.northPoleBand = north
		p.southPoleBand = south
	}
}
