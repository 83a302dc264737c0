package mesh

import "github.com/go-gl/mathgl/mgl32"

// ScreenVertex is a mesh vertex after projection to viewport pixels.
type ScreenVertex struct {
	X, Y  float32
	Depth float32
	U, V  float32
	Color mgl32.Vec4
}

// Project transforms every triangle by mvp and appends the front-facing ones to dst in viewport
// pixels, origin at the top-left. Triangles with a vertex behind the eye are dropped, and so are
// triangles that wind clockwise on screen, which on a closed convex mesh leaves no overlap between the
// remaining triangles.
//
// Parameters:
//   - mvp: model-view-projection matrix producing GL clip coordinates
//   - width, height: viewport size in pixels
//   - dst: slice to append to, may be nil
//
// Returns:
//   - []ScreenVertex: dst with three vertices appended per visible triangle
func (s *Sphere) Project(mvp mgl32.Mat4, width, height int, dst []ScreenVertex) []ScreenVertex {
	w := float32(width)
	h := float32(height)

	var tri [3]ScreenVertex
	for i := 0; i+2 < len(s.Positions); i += 3 {
		visible := true
		for k := range 3 {
			clip := mvp.Mul4x1(s.Positions[i+k].Vec4(1))
			if clip[3] <= 0 {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip[3])
			tri[k] = ScreenVertex{
				X:     (ndc[0] + 1) / 2 * w,
				Y:     (1 - ndc[1]) / 2 * h,
				Depth: ndc[2],
				U:     s.TexCoords[i+k][0],
				V:     s.TexCoords[i+k][1],
				Color: s.Colors[i+k],
			}
		}
		if !visible {
			continue
		}

		// Screen y points down, so a counter-clockwise triangle has a negative signed area here.
		area := (tri[1].X-tri[0].X)*(tri[2].Y-tri[0].Y) - (tri[2].X-tri[0].X)*(tri[1].Y-tri[0].Y)
		if area >= 0 {
			continue
		}
		dst = append(dst, tri[0], tri[1], tri[2])
	}
	return dst
}
