package model

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell is one enumerated grid position and its state.
type Cell struct {
	X, Y  int
	Alive bool
}

// Grid is a fixed-size board with hard edges: no wraparound, no resizing.
//
// A Grid is not safe for concurrent use. The driver owns it and must not
// enumerate it while Advance is running.
type Grid struct {
	width  int
	height int
	cells  [][]bool
	next   [][]bool // scratch buffer for Advance, swapped with cells

	legacyEdges bool
	history     []string // hashes of recent generations for cycle detection
}

// NewGrid creates a grid with all cells dead. Both dimensions must be positive.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] height=%d width=%d", height, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  makeCells(height, width),
		next:   makeCells(height, width),
	}, nil
}

func makeCells(height, width int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// SetLegacyEdges toggles parity with the historical update region, where the
// last row and column are never computed and die on every Advance.
func (g *Grid) SetLegacyEdges(on bool) {
	g.legacyEdges = on
}

// LegacyEdges reports whether the legacy update region is in effect.
func (g *Grid) LegacyEdges() bool {
	return g.legacyEdges
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) mustBeInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(&CoordinateError{X: x, Y: y, Width: g.width, Height: g.height})
	}
}

// Get returns the state of a cell. It panics with a *CoordinateError when
// (x, y) is outside the grid.
func (g *Grid) Get(x, y int) bool {
	g.mustBeInBounds(x, y)
	return g.cells[y][x]
}

// Set sets a cell to alive (true) or dead (false). Same bounds contract as Get.
func (g *Grid) Set(x, y int, alive bool) {
	g.mustBeInBounds(x, y)
	g.cells[y][x] = alive
}

// Toggle flips the state of a cell. Same bounds contract as Get.
func (g *Grid) Toggle(x, y int) {
	g.mustBeInBounds(x, y)
	g.cells[y][x] = !g.cells[y][x]
}

// ResetRandom sets every cell live with probability p, drawing once per cell.
// p outside [0,1] is a caller bug and panics.
func (g *Grid) ResetRandom(p float64, src RandomSource) {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("probability out of range: %v", p))
	}
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = src.Bool(p)
		}
	}
	g.history = nil
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.history = nil
}

// CountNeighbors counts live cells in the Moore neighborhood of (x, y),
// skipping positions outside the grid.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation from a snapshot of the current one
// and swaps it in once the whole pass is done.
func (g *Grid) Advance() {
	maxX, maxY := g.width, g.height
	if g.legacyEdges {
		maxX, maxY = g.width-1, g.height-1
	}

	for y := range g.height {
		clear(g.next[y])
	}

	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			g.next[y][x] = rules.NextState(g.cells[y][x], g.CountNeighbors(x, y))
		}
	}

	g.cells, g.next = g.next, g.cells
}

// All yields every cell in row-major order. The sequence can be ranged over
// any number of times.
func (g *Grid) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(Cell{X: x, Y: y, Alive: g.cells[y][x]}) {
					return
				}
			}
		}
	}
}

// LiveCells yields only the live cells, in row-major order
func (g *Grid) LiveCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range g.All() {
			if c.Alive && !yield(c) {
				return
			}
		}
	}
}

// Population returns the number of live cells
func (g *Grid) Population() (count int) {
	for range g.LiveCells() {
		count++
	}
	return
}
