package camera

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUGlobeUniform is the GPU-aligned representation of the globe uniform buffer.
// Matches the WGSL GlobeUniform struct in the renderer's globe shader.
// Size: 128 bytes (two mat4x4<f32>).
type GPUGlobeUniform struct {
	MVP   mgl32.Mat4 // offset  0: clip-from-model matrix (mat4x4<f32>)
	Model mgl32.Mat4 // offset 64: world-from-model matrix (mat4x4<f32>)
}

// Size returns the size of the GPUGlobeUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUGlobeUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUGlobeUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUGlobeUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.MVP[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Model[i]))
	}
	return buf
}
