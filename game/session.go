// Package game composes a Grid and an UpdateClock into the per-tick driver
// state shared by the headless and interactive front ends.
package game

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/clock"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrUnknownPattern is returned when the configured pattern has no definition
var ErrUnknownPattern = errors.New("unknown pattern")

// Session owns one simulation. It is driven from a single goroutine.
type Session struct {
	config utils.Config
	grid   *model.Grid
	clock  *clock.UpdateClock
	ts     clock.TimeSource
	rnd    model.RandomSource
	stats  *utils.Stats

	generation  int
	lastAdvance time.Time
}

// NewSession validates config, builds the grid and seeds it randomly.
// A nil ts uses the system clock; a nil rnd uses a RandSource seeded from
// config.Seed, or from the wall clock when the seed is 0.
func NewSession(config utils.Config, ts clock.TimeSource, rnd model.RandomSource) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	grid, err := model.NewGrid(config.Height, config.Width)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to build grid")
	}
	grid.SetLegacyEdges(config.LegacyEdges)

	if ts == nil {
		ts = clock.SystemClock
	}
	if rnd == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rnd = model.NewRandSource(seed)
	}

	s := &Session{
		config:      config,
		grid:        grid,
		clock:       clock.NewUpdateClock(config.TimeStep, ts),
		ts:          ts,
		rnd:         rnd,
		stats:       utils.NewStats(),
		lastAdvance: ts.Now(),
	}
	if err = s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the board for read access by renderers
func (s *Session) Grid() *model.Grid {
	return s.grid
}

// Config returns the configuration the session was built with
func (s *Session) Config() utils.Config {
	return s.config
}

// Generation returns the number of generations computed so far
func (s *Session) Generation() int {
	return s.generation
}

// Tick advances one generation if the clock grants it and reports whether it did.
func (s *Session) Tick() bool {
	if !s.clock.ShouldUpdate() {
		return false
	}
	s.advance()
	return true
}

// Step advances one generation immediately, paused or not.
func (s *Session) Step() {
	s.advance()
}

func (s *Session) advance() {
	start := s.ts.Now()
	s.grid.UpdateHistory()
	s.grid.Advance()
	s.generation++

	s.stats.Update(s.grid.Population(), start.Sub(s.lastAdvance), s.ts.Now().Sub(start))
	s.lastAdvance = start
}

// TogglePause suspends or resumes clock-driven generations
func (s *Session) TogglePause() {
	s.clock.TogglePause()
}

// Reset reseeds the grid from the configured pattern, centered, or randomly
// when no pattern is configured.
func (s *Session) Reset() error {
	if s.config.Pattern == "" {
		s.Randomize()
		return nil
	}

	p, ok := model.Patterns[s.config.Pattern]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[Reset] %q", s.config.Pattern)
	}
	w, h := p.Size()
	s.grid.Clear()
	return s.grid.Stamp(p, (s.grid.Width()-w)/2, (s.grid.Height()-h)/2)
}

// Randomize reseeds every cell with the configured density
func (s *Session) Randomize() {
	s.grid.ResetRandom(s.config.RandomDensity, s.rnd)
}

// Clear kills every cell
func (s *Session) Clear() {
	s.grid.Clear()
}

// ToggleCell flips the cell under a screen position. Positions outside the
// grid are ignored and reported as false, since they come from user input.
func (s *Session) ToggleCell(x, y int) bool {
	if !s.grid.InBounds(x, y) {
		return false
	}
	s.grid.Toggle(x, y)
	return true
}

// Status returns a snapshot for display
func (s *Session) Status() Status {
	population := s.grid.Population()
	return Status{
		Generation:      s.generation,
		Population:      population,
		Density:         float64(population) / float64(s.grid.Width()*s.grid.Height()) * 100,
		Paused:          s.clock.IsPaused(),
		Stagnant:        s.grid.IsStagnant(),
		BoundingBoxSize: s.grid.BoundingBoxSize(),
		Stats:           *s.stats,
	}
}
