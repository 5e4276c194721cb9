package tile

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int, alpha uint8) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 4), uint8(y * 2), uint8(x + y), alpha})
		}
	}
	return m
}

func TestEncode(t *testing.T) {
	m := gradient(Width, Height, 0x80)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	// IHDR color type 2 is truecolor without alpha
	require.True(t, b.Len() > 26)
	assert.Equal(t, byte(8), b.Bytes()[24])
	assert.Equal(t, byte(2), b.Bytes()[25])

	out, err := png.Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, Width, Height), out.Bounds())

	// Color is kept, alpha is dropped
	r, g, bl, a := out.At(10, 20).RGBA()
	assert.Equal(t, uint32(40*0x101), r)
	assert.Equal(t, uint32(40*0x101), g)
	assert.Equal(t, uint32(30*0x101), bl)
	assert.Equal(t, uint32(0xffff), a)

	// Source is left untouched
	assert.Equal(t, uint8(0x80), m.NRGBAAt(10, 20).A)
}

func TestOpaque(t *testing.T) {
	big := gradient(Width, Height, 0x40)
	sub := big.SubImage(image.Rect(5, 7, 25, 17))

	m := Opaque(sub)
	assert.Equal(t, image.Rect(0, 0, 20, 10), m.Bounds())
	assert.Equal(t, color.NRGBA{20, 14, 12, 0xff}, m.NRGBAAt(0, 0))
	for i := 3; i < len(m.Pix); i += 4 {
		assert.Equal(t, uint8(0xff), m.Pix[i])
	}

	// Source is left untouched
	assert.Equal(t, uint8(0x40), big.NRGBAAt(5, 7).A)
}

func TestEncodeSubImage(t *testing.T) {
	big := gradient(Width+20, Height+20, 0xff)
	sub := big.SubImage(image.Rect(10, 10, 10+Width, 10+Height))

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, sub))

	out, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, Width, Height), out.Bounds())
	assert.Equal(t, big.At(10, 10), color.NRGBAModel.Convert(out.At(0, 0)))
}

func TestEncodeWrongSize(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, Width-1, Height),
		image.Rect(0, 0, Width, Height+1),
		image.Rect(0, 0, Height, Width),
		{},
	} {
		b := new(bytes.Buffer)
		assert.Equal(t, errWrongSize, Encode(b, image.NewNRGBA(r)))
		assert.Equal(t, 0, b.Len())
	}
}
