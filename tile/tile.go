/*
Package tile describes the individual mahjong tile images cut from the sprite
sheet and implements the encoder used to write them.

Each tile is exactly 63 by 99 pixels and is named after its suit and number,
for example "p1" for the one of dots or "z7" for the last honor tile. The sheet
holds one suit per row; not every column of the honors and flowers rows is
used, leaving 42 tiles out of the 45 grid cells.
*/
package tile

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Width is the width of every tile image in pixels
	Width = 63
	// Height is the height of every tile image in pixels
	Height = 99
)

// Suit identifies a group of tiles. The zero value is not a valid suit.
type Suit byte

// The suits in the order they are written.
const (
	Dots       Suit = 'p'
	Bamboo     Suit = 's'
	Characters Suit = 'm'
	Honors     Suit = 'z'
	Flowers    Suit = 'f'
)

type suitInfo struct {
	row   int
	count int
}

// Row and tile count of each suit within the sheet
var layout = map[Suit]suitInfo{
	Dots:       {0, 9},
	Bamboo:     {1, 9},
	Characters: {2, 9},
	Honors:     {3, 7},
	Flowers:    {4, 8},
}

// Every suit in processing order
var suits = [...]Suit{Dots, Bamboo, Characters, Honors, Flowers}

func (s Suit) String() string {
	return string(rune(s))
}

// Row returns the sheet row holding the suit.
func (s Suit) Row() int {
	return layout[s].row
}

// Count returns the number of tiles in the suit.
func (s Suit) Count() int {
	return layout[s].count
}

// Tile is a single named tile.
type Tile struct {
	Suit   Suit
	Number int
}

// Name returns the base name of the tile, such as "m5".
func (t Tile) Name() string {
	return t.Suit.String() + strconv.Itoa(t.Number)
}

// Filename returns the name of the image file for the tile.
func (t Tile) Filename() string {
	return t.Name() + ".png"
}

// Row returns the sheet row of the tile.
func (t Tile) Row() int {
	return t.Suit.Row()
}

// Col returns the sheet column of the tile.
func (t Tile) Col() int {
	return t.Number - 1
}

func (t Tile) String() string {
	return t.Name()
}

// All returns all 42 tiles in processing order, p1 through p9, s1 through
// s9, m1 through m9, z1 through z7 and finally f1 through f8.
func All() []Tile {
	var tiles []Tile
	for _, s := range suits {
		for n := 1; n <= s.Count(); n++ {
			tiles = append(tiles, Tile{s, n})
		}
	}
	return tiles
}

// Summary lists the range of names written for each suit.
func Summary() string {
	ranges := make([]string, 0, len(suits))
	for _, s := range suits {
		ranges = append(ranges, fmt.Sprintf("%s1..%s%d", s, s, s.Count()))
	}
	return strings.Join(ranges, ", ")
}
