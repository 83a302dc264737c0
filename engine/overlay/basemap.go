package overlay

import (
	"image"
	"image/color"

	"github.com/Carmen-Shannon/oxy-globe/common"
)

var (
	oceanColor    = color.RGBA{R: 18, G: 52, B: 96, A: 255}
	gridColor     = color.RGBA{R: 90, G: 130, B: 170, A: 255}
	meridianColor = color.RGBA{R: 220, G: 90, B: 60, A: 255}
)

// LoadBaseMap decodes an equirectangular map from disk, or generates a graticule when path is empty.
//
// Parameters:
//   - path: PNG or JPEG file, may be empty
//   - width, height: graticule size when no path is given
//
// Returns:
//   - *image.RGBA: the base map
//   - error: decode failure
func LoadBaseMap(path string, width, height int) (*image.RGBA, error) {
	if path == "" {
		return Graticule(width, height), nil
	}
	return common.DecodeImage(path, nil)
}

// Graticule renders an equirectangular grid: 30 degree lines over an ocean fill with the equator and
// prime meridian highlighted. Longitude -180 is the left edge and latitude 90 the top row.
//
// Parameters:
//   - width, height: image size in pixels
//
// Returns:
//   - *image.RGBA: the generated map
func Graticule(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = oceanColor.R
		img.Pix[i+1] = oceanColor.G
		img.Pix[i+2] = oceanColor.B
		img.Pix[i+3] = oceanColor.A
	}

	for lon := 0; lon <= 360; lon += 30 {
		x := min(lon*width/360, width-1)
		c := gridColor
		if lon == 180 {
			c = meridianColor
		}
		for y := range height {
			img.SetRGBA(x, y, c)
		}
	}
	for lat := 0; lat <= 180; lat += 30 {
		y := min(lat*height/180, height-1)
		c := gridColor
		if lat == 90 {
			c = meridianColor
		}
		for x := range width {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
