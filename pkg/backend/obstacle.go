package backend

// Obstacle is anything that blocks cells on the map.
type Obstacle interface {
	IsLocationObstructed(x int, y int) bool
	Symbol() rune
}

// Wall blocks an inclusive rectangle. From and To may be any two opposite
// corners.
type Wall struct {
	From Coordinate
	To   Coordinate
	Icon rune
}

// IsLocationObstructed reports whether (x, y) lies inside the wall.
func (wall *Wall) IsLocationObstructed(x int, y int) bool {
	return x >= min(wall.From.X, wall.To.X) && x <= max(wall.From.X, wall.To.X) &&
		y >= min(wall.From.Y, wall.To.Y) && y <= max(wall.From.Y, wall.To.Y)
}

// Symbol returns the wall icon, '#' by default.
func (wall *Wall) Symbol() rune {
	return iconOr(wall.Icon, '#')
}

// Rock blocks a single cell.
type Rock struct {
	Position Coordinate
	Icon     rune
}

// IsLocationObstructed reports whether (x, y) is the rock's cell.
func (rock *Rock) IsLocationObstructed(x int, y int) bool {
	return rock.Position == Coordinate{X: x, Y: y}
}

// Symbol returns the rock icon, '*' by default.
func (rock *Rock) Symbol() rune {
	return iconOr(rock.Icon, '*')
}

// Water covers every cell within Radius of Center.
type Water struct {
	Center Coordinate
	Radius int
	Icon   rune
}

// IsLocationObstructed reports whether (x, y) is within the pool. A negative
// radius covers nothing.
func (water *Water) IsLocationObstructed(x int, y int) bool {
	if water.Radius < 0 {
		return false
	}
	dx := x - water.Center.X
	dy := y - water.Center.Y
	return dx*dx+dy*dy <= water.Radius*water.Radius
}

// Symbol returns the water icon, '~' by default.
func (water *Water) Symbol() rune {
	return iconOr(water.Icon, '~')
}

func iconOr(icon rune, fallback rune) rune {
	if icon == 0 {
		return fallback
	}
	return icon
}
