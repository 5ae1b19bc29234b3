package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	TimeStep            time.Duration `json:"time_step"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	Pattern             string        `json:"pattern"`
	Seed                int64         `json:"seed"`
	LegacyEdges         bool          `json:"legacy_edges"`
	Interactive         bool          `json:"interactive"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              50,
		TimeStep:            200 * time.Millisecond,
		FrameRate:           16 * time.Millisecond, // driver poll interval, roughly 60 fps
		RandomDensity:       0.2,
		Pattern:             "", // empty seeds randomly
		Seed:                0,  // 0 seeds from the wall clock
		LegacyEdges:         false,
		Interactive:         false,
		MaxGenerations:      0,
		AutoRestart:         true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.TimeStep < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative time step: %v", c.TimeStep)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be in [0,1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations: %d", c.MaxGenerations)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative stagnation threshold: %d", c.StagnationThreshold)
	}
	return nil
}
