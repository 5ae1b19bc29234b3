package model

import "github.com/pkg/errors"

// Offset is a position relative to a pattern origin
type Offset struct {
	DX, DY int
}

// Pattern is a named set of live cells placed relative to an origin.
type Pattern struct {
	Name  string
	Cells []Offset
}

var (
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	// Blinker is three cells in a row, a period 2 oscillator.
	Blinker = Pattern{Name: "blinker", Cells: []Offset{{0, 0}, {1, 0}, {2, 0}}}
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{Name: "glider", Cells: []Offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
)

// Patterns lists the built-in patterns by name
var Patterns = map[string]Pattern{
	Block.Name:   Block,
	Blinker.Name: Blinker,
	Glider.Name:  Glider,
}

// Size returns the width and height of the pattern's bounding box
func (p Pattern) Size() (width, height int) {
	for _, o := range p.Cells {
		width = max(width, o.DX+1)
		height = max(height, o.DY+1)
	}
	return
}

// Stamp sets the pattern's cells live with its origin at (x, y). Cells are
// only added, never cleared. Nothing is written when the pattern does not fit.
func (g *Grid) Stamp(p Pattern, x, y int) error {
	for _, o := range p.Cells {
		if !g.InBounds(x+o.DX, y+o.DY) {
			return errors.Wrapf(ErrPatternOutOfBounds, "[Stamp] %s at (%d,%d) in %dx%d grid",
				p.Name, x, y, g.width, g.height)
		}
	}
	for _, o := range p.Cells {
		g.cells[y+o.DY][x+o.DX] = true
	}
	return nil
}
