package clock

import "time"

// TimeSource provides the current time.
// This interface enables dependency injection for testing the update gate.
type TimeSource interface {
	Now() time.Time
}

// SystemClock is the default TimeSource using the standard library.
var SystemClock TimeSource = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// UpdateClock is a pausable gate that grants at most one generation per time step.
//
// The interval restarts when an update is granted, so missed intervals are
// never caught up. Not safe for concurrent use.
type UpdateClock struct {
	src        TimeSource
	lastUpdate time.Time
	timeStep   time.Duration
	paused     bool
}

// NewUpdateClock returns an unpaused clock whose first interval starts now.
// A nil src falls back to SystemClock.
func NewUpdateClock(timeStep time.Duration, src TimeSource) *UpdateClock {
	if src == nil {
		src = SystemClock
	}
	return &UpdateClock{
		src:        src,
		lastUpdate: src.Now(),
		timeStep:   timeStep,
	}
}

// TimeStep returns the minimum interval between granted updates
func (c *UpdateClock) TimeStep() time.Duration {
	return c.timeStep
}

// IsPaused reports whether updates are currently suspended
func (c *UpdateClock) IsPaused() bool {
	return c.paused
}

// TogglePause suspends or resumes updates. The running interval is not reset.
func (c *UpdateClock) TogglePause() {
	c.paused = !c.paused
}

// ShouldUpdate reports whether more than one time step has elapsed since the
// last granted update. A true result restarts the interval; a false result
// has no side effect.
func (c *UpdateClock) ShouldUpdate() bool {
	if c.paused {
		return false
	}
	now := c.src.Now()
	if now.Sub(c.lastUpdate) <= c.timeStep {
		return false
	}
	c.lastUpdate = now
	return true
}
