// Package tilemap holds the tile grid the raycaster walks through.
package tilemap

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/tilecaster/internal/core/geom"
)

// ErrInvalidMap is wrapped by every map validation failure.
var ErrInvalidMap = errors.New("invalid map")

// Cell is the tag stored in each grid square.
type Cell uint8

// Cell tags. Only Wall blocks rays; everything else is passable.
const (
	Floor Cell = iota
	Wall
	Enemy
	Player
)

// String returns the tag name.
func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Enemy:
		return "enemy"
	case Player:
		return "player"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Rune returns the map file character for the tag.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Enemy:
		return 'E'
	case Player:
		return 'P'
	default:
		return '.'
	}
}

// CellFromRune parses a map file character.
func CellFromRune(r rune) (Cell, error) {
	switch r {
	case '#':
		return Wall, nil
	case '.', ' ':
		return Floor, nil
	case 'E', 'e':
		return Enemy, nil
	case 'P', 'p':
		return Player, nil
	}
	return Floor, fmt.Errorf("unknown tile %q: %w", r, ErrInvalidMap)
}

// Grid is a rectangular tile grid addressed by (col, row). World point
// (x, y) lies in cell (⌊x⌋, ⌊y⌋).
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New returns a width×height grid filled with Floor.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Bounded returns a grid with a wall ring and an open floor interior.
func Bounded(width, height int) *Grid {
	g := New(width, height)
	for col := 0; col < width; col++ {
		g.Set(col, 0, Wall)
		g.Set(col, height-1, Wall)
	}
	for row := 0; row < height; row++ {
		g.Set(0, row, Wall)
		g.Set(width-1, row, Wall)
	}
	return g
}

// Parse builds a grid from text rows, row 0 first. Rows must all have the
// same length.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrInvalidMap)
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("empty first row: %w", ErrInvalidMap)
	}
	g := New(width, len(rows))
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d: %w", row, len(runes), width, ErrInvalidMap)
		}
		for col, r := range runes {
			cell, err := CellFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			g.cells[row*width+col] = cell
		}
	}
	return g, nil
}

// MustParse is Parse for hard-coded maps.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// defaultRows is the built-in world: a 9×8 room with one pillar.
var defaultRows = []string{
	"#########",
	"#P......#",
	"#.......#",
	"#...#...#",
	"#.......#",
	"#.....E.#",
	"#.......#",
	"#########",
}

// Default returns the built-in 9×8 world.
func Default() *Grid {
	return MustParse(defaultRows...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// At returns the cell at (col, row). Out of bounds reads as Wall.
func (g *Grid) At(col, row int) Cell {
	if !g.InBounds(col, row) {
		return Wall
	}
	return g.cells[row*g.width+col]
}

// Set stores c at (col, row). Out of bounds writes are ignored.
func (g *Grid) Set(col, row int, c Cell) {
	if !g.InBounds(col, row) {
		return
	}
	g.cells[row*g.width+col] = c
}

// Blocks reports whether rays stop at (col, row).
func (g *Grid) Blocks(col, row int) bool {
	return g.At(col, row) == Wall
}

// BlocksPoint reports whether the cell containing world point p blocks.
func (g *Grid) BlocksPoint(p geom.Vec2) bool {
	return g.Blocks(floorIndex(p.X), floorIndex(p.Y))
}

// Spawn returns the centre of the first Player cell, scanning row by row.
func (g *Grid) Spawn() (geom.Vec2, bool) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row*g.width+col] == Player {
				return geom.V(float64(col)+0.5, float64(row)+0.5), true
			}
		}
	}
	return geom.Vec2{}, false
}

// CheckRing verifies that every border cell is a Wall. The caster relies on
// the ring to terminate.
func (g *Grid) CheckRing() error {
	if g.width < 3 || g.height < 3 {
		return fmt.Errorf("grid %dx%d is too small for a wall ring: %w", g.width, g.height, ErrInvalidMap)
	}
	for col := 0; col < g.width; col++ {
		if g.At(col, 0) != Wall || g.At(col, g.height-1) != Wall {
			return fmt.Errorf("border column %d is open: %w", col, ErrInvalidMap)
		}
	}
	for row := 0; row < g.height; row++ {
		if g.At(0, row) != Wall || g.At(g.width-1, row) != Wall {
			return fmt.Errorf("border row %d is open: %w", row, ErrInvalidMap)
		}
	}
	return nil
}

// Rows renders the grid back into map file rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for row := 0; row < g.height; row++ {
		line := make([]rune, g.width)
		for col := 0; col < g.width; col++ {
			line[col] = g.cells[row*g.width+col].Rune()
		}
		rows[row] = string(line)
	}
	return rows
}

func floorIndex(v float64) int {
	return int(math.Floor(v))
}
