package mesh

import "unsafe"

// GPUVertex is the GPU-aligned representation of a single globe vertex.
// Matches the vertex buffer layout declared by the renderer's globe pipeline.
// Size: 36 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position (vec3<f32>)
	Color    [4]float32 // offset 12: vertex color multiplied with the texture (vec4<f32>)
	TexCoord [2]float32 // offset 28: equirectangular texture coordinate (vec2<f32>)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (36)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// GPUVertices interleaves the sphere's vertex streams for upload.
//
// Returns:
//   - []GPUVertex: one entry per vertex, in triangle order
func (s *Sphere) GPUVertices() []GPUVertex {
	out := make([]GPUVertex, len(s.Positions))
	for i := range s.Positions {
		out[i] = GPUVertex{
			Position: [3]float32(s.Positions[i]),
			Color:    [4]float32(s.Colors[i]),
			TexCoord: [2]float32(s.TexCoords[i]),
		}
	}
	return out
}
