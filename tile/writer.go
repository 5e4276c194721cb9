package tile

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

var errWrongSize = errors.New("tile: image is wrong size")

// Opaque returns a copy of m with its top-left corner at (0, 0) and every
// alpha value forced to 0xff, leaving only the RGB channels.
func Opaque(m image.Image) *image.NRGBA {
	dup := imaging.Clone(m)
	for i := 3; i < len(dup.Pix); i += 4 {
		dup.Pix[i] = 0xff
	}
	return dup
}

// Encode writes the Image m to w as an RGB PNG tile using the best
// compression available. Any alpha channel is discarded.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return errWrongSize
	}

	return imaging.Encode(w, Opaque(m), imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}
