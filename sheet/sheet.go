/*
Package sheet loads the sprite sheet that tiles are cut from.

Whatever the layout of the source image, grayscale, paletted, with or without
an alpha channel, it is converted to an opaque NRGBA image so every crop works
on the same pixel layout. JPEG, PNG, GIF, BMP, TIFF and WebP sources are
supported.
*/
package sheet

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/bodgit/tileslice/tile"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrMissingSource is returned by Open when the sheet does not exist.
var ErrMissingSource = errors.New("missing source image")

// Decode reads a sprite sheet from r and returns it as an opaque image with
// its top-left corner at (0, 0).
func Decode(r io.Reader) (*image.NRGBA, error) {
	m, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}

	return tile.Opaque(m), nil
}

// Open checks that the sheet at path exists before decoding it. A missing
// sheet is reported as ErrMissingSource along with the expected path.
func Open(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
