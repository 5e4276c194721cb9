package tileslice

import (
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/tileslice/grid"
	"github.com/bodgit/tileslice/sheet"
	"github.com/bodgit/tileslice/tile"
	"github.com/disintegration/imaging"
)

// Cut returns the tile at row, col of the sprite sheet src. The grid cell is
// cropped, trimmed by grid.InsetFrac on each side and resized to the
// standard tile size with a Lanczos filter.
func Cut(src image.Image, row, col int) *image.NRGBA {
	b := src.Bounds()

	cell := grid.Cell(b.Dx(), b.Dy(), row, col).Add(b.Min)
	m := imaging.Crop(src, cell)

	m = imaging.Crop(m, grid.Inset(m.Bounds()))

	return imaging.Resize(m, tile.Width, tile.Height, imaging.Lanczos)
}

func (s *Slicer) writeTile(t tile.Tile, m image.Image) error {
	f, err := os.Create(filepath.Join(s.dir, t.Filename()))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tile.Encode(f, m); err != nil {
		return err
	}

	return f.Close()
}

// Run cuts every tile from the sprite sheet and writes each one, replacing
// any existing file. Nothing is written if the sheet is missing, otherwise
// the first error stops the run.
func (s *Slicer) Run() error {
	src, err := sheet.Open(filepath.Join(s.dir, SourceName))
	if err != nil {
		return err
	}
	s.logger.Printf("Read \"%s\", %dx%d\n", SourceName, src.Bounds().Dx(), src.Bounds().Dy())

	for _, t := range tile.All() {
		if err := s.writeTile(t, Cut(src, t.Row(), t.Col())); err != nil {
			return err
		}
		s.logger.Printf("Wrote \"%s\" from cell (%d, %d)\n", t.Filename(), t.Row(), t.Col())
	}

	return nil
}

// Summary describes the tiles written by Run.
func Summary() string {
	return "OK: wrote " + tile.Summary()
}
