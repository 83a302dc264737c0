package picker

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Polar is a picked point in the globe's texture-aligned polar frame.
type Polar struct {
	// Longitude is measured eastward from the map's left edge, in [0, 2π).
	Longitude s1.Angle
	// Latitude is positive north, in [-π/2, π/2].
	Latitude s1.Angle
}

// MapCoord is a normalized position on the equirectangular map texture, origin at the top-left.
type MapCoord struct {
	U float64
	V float64
}

// Result is the outcome of a pick. When Valid is false the ray missed the globe and every other
// field is zero.
type Result struct {
	Valid bool
	// Point is the world-space intersection, before the globe's yaw is undone.
	Point r3.Vector
	Polar Polar
	// MapCoord is only meaningful when HasMarker is true.
	MapCoord MapCoord
	// HasMarker is false inside the pole bands, where a marker would smear across the map's top or bottom rows.
	HasMarker bool
}

// Longitude returns the geographic longitude in degrees, negative west of the prime meridian,
// rounded to two decimals.
//
// Returns:
//   - float64: longitude in [-180, 180)
func (r Result) Longitude() float64 {
	return common.Round2((r.Polar.Longitude - math.Pi).Degrees())
}

// Latitude returns the geographic latitude in degrees, negative south of the equator, rounded to
// two decimals.
//
// Returns:
//   - float64: latitude in [-90, 90]
func (r Result) Latitude() float64 {
	return common.Round2(r.Polar.Latitude.Degrees())
}

// Text formats the result for display as "<lon>°E|W; <lat>°N|S". A miss formats as the empty
// string, which clears the display.
//
// Returns:
//   - string: the display text
func (r Result) Text() string {
	if !r.Valid {
		return ""
	}
	lon, lat := r.Longitude(), r.Latitude()
	ew, ns := "E", "N"
	if lon < 0 {
		ew = "W"
	}
	if lat < 0 {
		ns = "S"
	}
	return fmt.Sprintf("%.2f°%s; %.2f°%s", math.Abs(lon), ew, math.Abs(lat), ns)
}
