package backend

// Direction is a single 4-connected step on the grid.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionStop
)

// Offset returns the coordinate difference of one step in the direction.
func (direction Direction) Offset() Coordinate {
	switch direction {
	case DirectionUp:
		return Coordinate{X: 0, Y: -1}
	case DirectionDown:
		return Coordinate{X: 0, Y: 1}
	case DirectionLeft:
		return Coordinate{X: -1, Y: 0}
	case DirectionRight:
		return Coordinate{X: 1, Y: 0}
	}
	return Coordinate{}
}

func (direction Direction) String() string {
	switch direction {
	case DirectionUp:
		return "U"
	case DirectionDown:
		return "D"
	case DirectionLeft:
		return "L"
	case DirectionRight:
		return "R"
	}
	return "-"
}

// DirectionTo determines the direction of a single step from c1 to an
// adjacent c2. Horizontal moves are preferred.
func DirectionTo(c1 Coordinate, c2 Coordinate) Direction {
	xDiff := c2.X - c1.X
	yDiff := c2.Y - c1.Y
	direction := DirectionStop
	if xDiff < 0 {
		direction = DirectionLeft
	} else if xDiff > 0 {
		direction = DirectionRight
	} else if yDiff < 0 {
		direction = DirectionUp
	} else if yDiff > 0 {
		direction = DirectionDown
	}
	return direction
}
