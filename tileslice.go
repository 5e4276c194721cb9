/*
Package tileslice cuts the mahjong sprite sheet into individual tile images.

The sheet is read from a single directory, divided into a fixed 9 by 5 grid
and 42 of the cells are trimmed, resized to 63 by 99 pixels and written back
to the same directory as PNG files named after each tile.
*/
package tileslice

import "log"

// SourceName is the name of the sprite sheet within the tile directory.
const SourceName = "all.jpg"

// Slicer writes the tiles cut from a sprite sheet.
type Slicer struct {
	dir    string
	logger *log.Logger
}

// New returns a Slicer reading and writing within dir.
func New(dir string, logger *log.Logger) *Slicer {
	return &Slicer{
		dir:    dir,
		logger: logger,
	}
}
