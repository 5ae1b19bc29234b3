package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid is built with a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrPatternOutOfBounds is returned when a pattern does not fit at the requested origin.
	ErrPatternOutOfBounds = errors.New("pattern does not fit inside the grid")
)

// CoordinateError is the panic value raised on out-of-range cell access.
// Out-of-range access is a caller bug, so it is never returned as an error.
type CoordinateError struct {
	X, Y          int
	Width, Height int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinates: x = %d, y = %d (grid: %dx%d)", e.X, e.Y, e.Width, e.Height)
}
