package model

import (
	"crypto/md5"
	"fmt"
)

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current generation, keeping only the latest few.
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three recorded ones: a still life or an oscillator of period 1 to 3.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}

// BoundingBox returns the smallest rectangle holding every live cell.
// ok is false when the grid is empty.
func (g *Grid) BoundingBox() (minX, minY, maxX, maxY int, ok bool) {
	for c := range g.LiveCells() {
		if !ok {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			ok = true
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return
}

// BoundingBoxSize returns the area of the active region
func (g *Grid) BoundingBoxSize() int {
	minX, minY, maxX, maxY, ok := g.BoundingBox()
	if !ok {
		return 0
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}
