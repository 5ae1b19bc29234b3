package rules

const (
	// SurviveLow and SurviveHigh bound the neighbor counts a live cell survives with.
	SurviveLow  = 2
	SurviveHigh = 3
	// Birth is the exact neighbor count that brings a dead cell to life.
	Birth       = 3
)

/*
NextState returns the state of a cell in the following generation.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
*/
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= SurviveLow && neighbors <= SurviveHigh
	}
	return neighbors == Birth
}
