/*
Package grid computes the cell geometry of the mahjong sprite sheet.

The sheet is split into a fixed logical grid of 9 columns by 5 rows. Each cell
edge is interpolated independently from the sheet dimensions so neighbouring
cells can overlap or leave a one pixel gap where the rounding disagrees.
*/
package grid

import (
	"image"
	"math"
)

const (
	// Cols is the number of tile columns in the sheet
	Cols = 9
	// Rows is the number of tile rows in the sheet
	Rows = 5

	// InsetFrac is the fraction of a cell trimmed from each edge to remove
	// shadows and borders before resizing
	InsetFrac = 0.06
)

// round rounds half to even.
func round(f float64) int {
	return int(math.RoundToEven(f))
}

// Boundary returns the position of edge i when dim pixels are split into
// count equal parts.
func Boundary(i, dim, count int) int {
	step := float64(dim) / float64(count)
	return round(float64(i) * step)
}

// Cell returns the rectangle covered by the cell at row, col in a sheet of
// w by h pixels.
func Cell(w, h, row, col int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{
			X: Boundary(col, w, Cols),
			Y: Boundary(row, h, Rows),
		},
		Max: image.Point{
			X: Boundary(col+1, w, Cols),
			Y: Boundary(row+1, h, Rows),
		},
	}
}

// Inset shrinks r by InsetFrac of its own width on the left and right and of
// its own height on the top and bottom. The result is not checked for being
// empty.
func Inset(r image.Rectangle) image.Rectangle {
	ix := round(float64(r.Dx()) * InsetFrac)
	iy := round(float64(r.Dy()) * InsetFrac)

	// Not using image.Rect or image.Rectangle.Inset as both would repair a
	// degenerate result
	return image.Rectangle{
		Min: image.Point{X: r.Min.X + ix, Y: r.Min.Y + iy},
		Max: image.Point{X: r.Max.X - ix, Y: r.Max.Y - iy},
	}
}
