package rules

const (
	// SurviveLow and SurviveHigh bound the neighbour count that keeps a live cell alive
	SurviveLow  = 2
	SurviveHigh = 3
	// Birth is the exact neighbour count that brings a dead cell to life
	Birth = 3
)

/*
Conway applies the B3/S23 rule and reports whether the cell is alive in the next generation.

A live cell survives with 2 or 3 live neighbours, a dead cell is born with exactly 3,
every other cell is dead.
*/
func Conway(alive bool, neighbours int) bool {
	if alive {
		return neighbours >= SurviveLow && neighbours <= SurviveHigh
	}
	return neighbours == Birth
}
