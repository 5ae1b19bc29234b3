package model

import "testing"

func TestIsStagnant_NeedsHistory(t *testing.T) {
	g := newTestGrid(t, 6, 6)
	stamp(t, g, Block, 1, 1)

	g.UpdateHistory()
	g.Advance()
	if g.IsStagnant() {
		t.Errorf("expected no verdict with a single recorded generation")
	}
}

func TestIsStagnant_StillLifeAndOscillator(t *testing.T) {
	for _, p := range []Pattern{Block, Blinker} {
		g := newTestGrid(t, 7, 7)
		stamp(t, g, p, 2, 3)

		for i := 0; i < 3; i++ {
			g.UpdateHistory()
			g.Advance()
		}
		if !g.IsStagnant() {
			t.Errorf("%s: expected stagnation", p.Name)
		}
	}
}

func TestIsStagnant_GliderIsActive(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	stamp(t, g, Glider, 1, 1)

	for i := 0; i < 5; i++ {
		g.UpdateHistory()
		g.Advance()
	}
	if g.IsStagnant() {
		t.Errorf("expected a moving glider not to be stagnant")
	}
}

func TestHistory_ResetOnClear(t *testing.T) {
	g := newTestGrid(t, 6, 6)
	for i := 0; i < 4; i++ {
		g.UpdateHistory()
	}
	g.Clear()
	if g.IsStagnant() {
		t.Errorf("expected Clear to drop history")
	}
}

func TestBoundingBox(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	if _, _, _, _, ok := g.BoundingBox(); ok {
		t.Errorf("expected empty grid to have no bounding box")
	}
	if g.BoundingBoxSize() != 0 {
		t.Errorf("expected size 0, got %d", g.BoundingBoxSize())
	}

	g.Set(2, 3, true)
	g.Set(6, 1, true)

	minX, minY, maxX, maxY, ok := g.BoundingBox()
	if !ok || minX != 2 || minY != 1 || maxX != 6 || maxY != 3 {
		t.Errorf("expected (2,1)-(6,3), got (%d,%d)-(%d,%d) ok=%v", minX, minY, maxX, maxY, ok)
	}
	if g.BoundingBoxSize() != 15 {
		t.Errorf("expected size 15, got %d", g.BoundingBoxSize())
	}
}
