package pathfind

import (
	"strings"

	"github.com/beefsack/go-astar"
	"github.com/mortenson/solvedmap/pkg/backend"
)

// GlyphRoute marks empty cells that a route passes through.
const GlyphRoute = 'o'

// Route is a path from a start to a target, both included.
type Route struct {
	Steps []backend.Coordinate
	Found bool
	Cost  float64
}

// Directions returns the moves needed to follow the route, e.g. "RRDL".
func (route Route) Directions() string {
	var sb strings.Builder
	for i := 1; i < len(route.Steps); i++ {
		sb.WriteString(backend.DirectionTo(route.Steps[i-1], route.Steps[i]).String())
	}
	return sb.String()
}

// world tracks all tiles in the viewport and is used for astar traversal.
type world struct {
	tiles map[backend.Coordinate]*tile
}

// tileKind differentiates blocked tiles from open ones.
type tileKind int

const (
	tileBlocked tileKind = iota
	tileNone
)

// tile represents a point on the map.
type tile struct {
	position backend.Coordinate
	world    *world
	kind     tileKind
}

// PathNeighbors is used by beefsack/astar to traverse.
func (t *tile) PathNeighbors() []astar.Pather {
	neighbors := []astar.Pather{}
	for _, direction := range []backend.Direction{
		backend.DirectionLeft,
		backend.DirectionRight,
		backend.DirectionUp,
		backend.DirectionDown,
	} {
		position := t.position.Add(direction.Offset())
		neighbor, ok := t.world.tiles[position]
		if ok && neighbor.kind == tileNone {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// PathNeighborCost is used by beefsack/astar to determine the cost of a move.
func (t *tile) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost estimates the cost of moving between two points.
func (t *tile) PathEstimatedCost(to astar.Pather) float64 {
	toT := to.(*tile)
	return float64(t.position.Distance(toT.position))
}

// newWorld builds a tile for every cell of the viewport. Start and target
// are always open, everything else is blocked if an obstacle covers it.
func newWorld(start backend.Coordinate, target backend.Coordinate, index *backend.ObstacleIndex) *world {
	viewport := backend.NewViewport(start, target)
	world := &world{
		tiles: make(map[backend.Coordinate]*tile, viewport.Rows()*viewport.Cols()),
	}
	for y := viewport.TopLeft.Y; y <= viewport.BottomRight.Y; y++ {
		for x := viewport.TopLeft.X; x <= viewport.BottomRight.X; x++ {
			position := backend.Coordinate{X: x, Y: y}
			kind := tileNone
			if position != start && position != target {
				if _, blocked := index.FindObstacleAt(x, y); blocked {
					kind = tileBlocked
				}
			}
			world.tiles[position] = &tile{
				position: position,
				world:    world,
				kind:     kind,
			}
		}
	}
	return world
}

// FindPath searches for the shortest 4-connected route from start to target
// that stays inside the rendered viewport and avoids obstacles.
func FindPath(start backend.Coordinate, target backend.Coordinate, index *backend.ObstacleIndex) Route {
	if index == nil {
		return Route{}
	}
	if start == target {
		return Route{Steps: []backend.Coordinate{start}, Found: true}
	}
	world := newWorld(start, target, index)
	fromTile := world.tiles[start]
	toTile := world.tiles[target]
	// astar returns the path from its second argument back to the first.
	path, cost, found := astar.Path(toTile, fromTile)
	if !found {
		return Route{}
	}
	steps := make([]backend.Coordinate, 0, len(path))
	for _, pather := range path {
		steps = append(steps, pather.(*tile).position)
	}
	return Route{Steps: steps, Found: true, Cost: cost}
}

// Overlay returns a copy of grid with the route drawn over empty cells.
func Overlay(grid *backend.Grid, route Route) *backend.Grid {
	cells := make([][]rune, len(grid.Cells))
	for j, row := range grid.Cells {
		cells[j] = append([]rune(nil), row...)
	}
	overlaid := &backend.Grid{Viewport: grid.Viewport, Cells: cells}
	for _, step := range route.Steps {
		if !grid.Contains(step) {
			continue
		}
		row, col := grid.Index(step)
		if cells[row][col] == backend.GlyphEmpty {
			cells[row][col] = GlyphRoute
		}
	}
	return overlaid
}
