package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphereCounts(t *testing.T) {
	s, err := NewSphere(DefaultRadius, DefaultSteps)
	require.NoError(t, err)

	assert.Equal(t, 16*32*2, s.TriangleCount())
	assert.Equal(t, s.TriangleCount()*3, s.VertexCount())
	assert.Len(t, s.Colors, s.VertexCount())
	assert.Len(t, s.TexCoords, s.VertexCount())
	assert.Len(t, s.GPUVertices(), s.VertexCount())
}

func TestNewSphereRejectsBadInput(t *testing.T) {
	_, err := NewSphere(0, 16)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = NewSphere(float32(math.NaN()), 16)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = NewSphere(2, 1)
	assert.ErrorIs(t, err, ErrInvalidSteps)
}

func TestSphereVerticesLieOnSurface(t *testing.T) {
	s, err := NewSphere(2, 8)
	require.NoError(t, err)

	for i, p := range s.Positions {
		assert.InDeltaf(t, 2, p.Len(), 1e-5, "vertex %d off the sphere", i)
		uv := s.TexCoords[i]
		assert.True(t, uv.X() >= 0 && uv.X() <= 1, "u out of range")
		assert.True(t, uv.Y() >= 0 && uv.Y() <= 1, "v out of range")
		assert.Equal(t, float32(1), s.Colors[i].W())
	}
}

func TestSphereTexCoordsMatchPickedLongitude(t *testing.T) {
	s, err := NewSphere(2, 8)
	require.NoError(t, err)

	for i, p := range s.Positions {
		uv := s.TexCoords[i]
		lat := math.Asin(float64(p.Y()) / 2)
		assert.InDelta(t, math.Pi/2-float64(uv.Y())*math.Pi, lat, 1e-3)

		// Longitude is undefined at the poles.
		if math.Abs(lat) > math.Pi/2-1e-3 {
			continue
		}
		lon := math.Atan2(float64(p.X()), float64(p.Z())) - math.Pi/2
		want := float64(uv.X()) * 2 * math.Pi
		diff := math.Remainder(lon-want, 2*math.Pi)
		assert.InDeltaf(t, 0, diff, 1e-4, "vertex %d longitude %v, texture longitude %v", i, lon, want)
	}
}

func TestSphereTrianglesFaceOutward(t *testing.T) {
	s, err := NewSphere(1, 6)
	require.NoError(t, err)

	for tri := range s.TriangleCount() {
		a, b, c := s.Positions[tri*3], s.Positions[tri*3+1], s.Positions[tri*3+2]
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() < 1e-6 {
			continue // collapsed at a pole
		}
		centroid := a.Add(b).Add(c)
		assert.Greaterf(t, normal.Dot(centroid), float32(0), "triangle %d is wound inward", tri)
	}
}

func TestSphereIsDeterministicAcrossWorkerCounts(t *testing.T) {
	serial, err := NewSphere(2, 12, WithWorkers(1))
	require.NoError(t, err)
	parallel, err := NewSphere(2, 12, WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, serial.Positions, parallel.Positions)
	assert.Equal(t, serial.TexCoords, parallel.TexCoords)
}

func TestGPUVertexLayout(t *testing.T) {
	var v GPUVertex
	assert.Equal(t, 36, v.Size())
}
