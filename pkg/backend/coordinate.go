package backend

import "fmt"

// Coordinate is a location on the infinite integer grid.
type Coordinate struct {
	X int
	Y int
}

// Add returns the sum of two coordinates.
func (c1 Coordinate) Add(c2 Coordinate) Coordinate {
	return Coordinate{
		X: c1.X + c2.X,
		Y: c1.Y + c2.Y,
	}
}

// Distance calculates the manhattan distance between two coordinates.
func (c1 Coordinate) Distance(c2 Coordinate) int {
	return abs(c1.X-c2.X) + abs(c1.Y-c2.Y)
}

func (c1 Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c1.X, c1.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
