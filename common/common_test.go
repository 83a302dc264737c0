package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert4(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DX(0.4))

	var inv mgl32.Mat4
	require.True(t, Invert4(&inv, m))
	identity, product, expected := mgl32.Ident4(), m.Mul4(inv), m.Inv()
	assert.InDeltaSlice(t, identity[:], product[:], 1e-5)
	assert.InDeltaSlice(t, expected[:], inv[:], 1e-5)
}

func TestInvert4Singular(t *testing.T) {
	out := mgl32.Ident4()
	assert.False(t, Invert4(&out, mgl32.Mat4{}))
	assert.Equal(t, mgl32.Ident4(), out)

	nan := float32(math.NaN())
	assert.False(t, Invert4(&out, mgl32.Mat4{nan, nan, nan, nan}))
	assert.Equal(t, mgl32.Ident4(), out)
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		-70:  290,
		364:  4,
		360:  0,
		-360: 0,
		725:  5,
	}
	for in, want := range cases {
		assert.InDeltaf(t, want, WrapDegrees(in), 1e-9, "WrapDegrees(%v)", in)
	}
}

func TestWrapRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, WrapRadians(-math.Pi), 1e-12)
	assert.InDelta(t, 0.5, WrapRadians(2*math.Pi+0.5), 1e-12)

	v := WrapRadians(-1e-18)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 2*math.Pi)
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 0.25, Clamp(0.1, 0.25, 1))
	assert.Equal(t, 1.0, Clamp(3, 0.25, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0.25, 1))

	assert.Equal(t, 12.35, Round2(12.3456))
	assert.Equal(t, -3.14, Round2(-3.14159))
}

func TestDecodeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := DecodeImage("", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, img.RGBAAt(1, 0))

	staged := NewTextureStagingData(img)
	assert.Equal(t, uint32(2), staged.Width)
	assert.Equal(t, uint32(1), staged.Height)
	assert.Len(t, staged.Pixels, 8)
}

func TestDecodeImageErrors(t *testing.T) {
	_, err := DecodeImage("", nil)
	assert.Error(t, err)

	_, err = DecodeImage("/nonexistent/map.png", nil)
	assert.Error(t, err)

	_, err = DecodeImage("", []byte("not an image"))
	assert.Error(t, err)
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Len(t, SliceToBytes([]float32{1, 2, 3}), 12)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "map.png", Coalesce("", "map.png", "other.png"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
