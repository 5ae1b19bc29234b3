package game

import "github.com/sheikhrachel/go-life/utils"

// Status is a point-in-time summary of a Session
type Status struct {
	Generation      int
	Population      int
	Density         float64 // percent of cells alive
	Paused          bool
	Stagnant        bool
	BoundingBoxSize int
	Stats           utils.Stats
}

// State names the simulation state for display
func (s Status) State() string {
	switch {
	case s.Population == 0:
		return "Extinct"
	case s.Paused:
		return "Paused"
	case s.Stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}
