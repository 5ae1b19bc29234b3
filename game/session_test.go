package game

import (
	"errors"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

func (f *fakeTime) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.Width = 6
	c.Height = 6
	c.TimeStep = 100 * time.Millisecond
	c.RandomDensity = 0
	return c
}

func newTestSession(t *testing.T, c utils.Config) (*Session, *fakeTime) {
	t.Helper()
	ft := &fakeTime{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s, err := NewSession(c, ft, model.NewRandSource(1))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, ft
}

func TestNewSession_InvalidConfig(t *testing.T) {
	c := testConfig()
	c.Width = 0
	if _, err := NewSession(c, nil, nil); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewSession_SeedsWithDensity(t *testing.T) {
	c := testConfig()
	c.RandomDensity = 1
	s, _ := newTestSession(t, c)

	if s.Status().Population != 36 {
		t.Errorf("expected a full grid, got %d live", s.Status().Population)
	}
	if s.Grid().LegacyEdges() {
		t.Errorf("expected full-grid updates by default")
	}
}

func TestNewSession_LegacyEdges(t *testing.T) {
	c := testConfig()
	c.LegacyEdges = true
	s, _ := newTestSession(t, c)
	if !s.Grid().LegacyEdges() {
		t.Errorf("expected legacy edges from config")
	}
}

func TestTick_GatedByClock(t *testing.T) {
	s, ft := newTestSession(t, testConfig())
	if err := s.Grid().Stamp(model.Blinker, 1, 2); err != nil {
		t.Fatal(err)
	}

	if s.Tick() {
		t.Errorf("expected no generation before the time step elapsed")
	}

	ft.advance(150 * time.Millisecond)
	if !s.Tick() {
		t.Fatalf("expected a generation after 150ms")
	}
	if s.Generation() != 1 {
		t.Errorf("expected generation 1, got %d", s.Generation())
	}
	if !s.Grid().Get(2, 1) || s.Grid().Get(1, 2) {
		t.Errorf("expected blinker to turn vertical")
	}
	if s.Tick() {
		t.Errorf("expected no second generation in the same instant")
	}
}

func TestTick_PausedButStepStillWorks(t *testing.T) {
	s, ft := newTestSession(t, testConfig())
	s.TogglePause()

	ft.advance(time.Second)
	if s.Tick() {
		t.Errorf("expected no generation while paused")
	}
	if !s.Status().Paused {
		t.Errorf("expected status to report paused")
	}

	s.Step()
	if s.Generation() != 1 {
		t.Errorf("expected manual step to advance, got generation %d", s.Generation())
	}
}

func TestToggleCell_IgnoresOutOfBounds(t *testing.T) {
	s, _ := newTestSession(t, testConfig())

	if !s.ToggleCell(3, 3) || !s.Grid().Get(3, 3) {
		t.Errorf("expected (3,3) to toggle on")
	}
	if s.ToggleCell(6, 0) || s.ToggleCell(-1, 2) {
		t.Errorf("expected out-of-range positions to be ignored")
	}
}

func TestRandomizeAndClear(t *testing.T) {
	c := testConfig()
	c.RandomDensity = 1
	s, _ := newTestSession(t, c)

	s.Clear()
	if s.Status().Population != 0 {
		t.Errorf("expected empty grid after Clear")
	}
	if s.Status().State() != "Extinct" {
		t.Errorf("expected Extinct, got %s", s.Status().State())
	}

	s.Randomize()
	if s.Status().Population != 36 {
		t.Errorf("expected full grid after Randomize, got %d", s.Status().Population)
	}
}

func TestStatus_TracksStats(t *testing.T) {
	s, ft := newTestSession(t, testConfig())
	if err := s.Grid().Stamp(model.Block, 2, 2); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		ft.advance(250 * time.Millisecond)
		s.Tick()
	}

	st := s.Status()
	if st.Generation != 4 || st.Stats.TotalGenerations != 4 {
		t.Errorf("expected 4 generations, got %d / %d", st.Generation, st.Stats.TotalGenerations)
	}
	if st.Population != 4 || st.BoundingBoxSize != 4 {
		t.Errorf("expected a 4-cell block, got %d cells in a box of %d", st.Population, st.BoundingBoxSize)
	}
	if st.Stats.GenerationsPerSecond != 4 {
		t.Errorf("expected 4 gen/sec, got %v", st.Stats.GenerationsPerSecond)
	}
	if !st.Stagnant || st.State() != "Stagnant" {
		t.Errorf("expected a still life to be reported stagnant, got %s", st.State())
	}
}

func TestNewSession_CenteredPattern(t *testing.T) {
	c := testConfig()
	c.Width, c.Height = 7, 5
	c.Pattern = "blinker"
	s, _ := newTestSession(t, c)

	for _, x := range []int{2, 3, 4} {
		if !s.Grid().Get(x, 2) {
			t.Errorf("expected (%d,2) live", x)
		}
	}
	if s.Status().Population != 3 {
		t.Errorf("expected only the blinker, got %d live", s.Status().Population)
	}
}

func TestNewSession_PatternErrors(t *testing.T) {
	c := testConfig()
	c.Pattern = "spaceship"
	if _, err := NewSession(c, nil, nil); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}

	c.Pattern = "glider"
	c.Width, c.Height = 2, 2
	if _, err := NewSession(c, nil, nil); !errors.Is(err, model.ErrPatternOutOfBounds) {
		t.Errorf("expected ErrPatternOutOfBounds, got %v", err)
	}
}
