package backend

import (
	"fmt"
	"strings"
)

// Padding is the margin kept around the start and target on every side.
const Padding = 2

// Glyphs used for cells that are not covered by an obstacle.
const (
	GlyphStart  = 'S'
	GlyphTarget = 'E'
	GlyphEmpty  = '.'
)

// Viewport is the inclusive rectangle rendered for a start/target pair.
type Viewport struct {
	TopLeft     Coordinate
	BottomRight Coordinate
}

// NewViewport returns the smallest rectangle holding start and target,
// grown by Padding.
func NewViewport(start Coordinate, target Coordinate) Viewport {
	return Viewport{
		TopLeft: Coordinate{
			X: min(start.X, target.X) - Padding,
			Y: min(start.Y, target.Y) - Padding,
		},
		BottomRight: Coordinate{
			X: max(start.X, target.X) + Padding,
			Y: max(start.Y, target.Y) + Padding,
		},
	}
}

// Rows returns the viewport height. Bounds are inclusive, hence the +1.
func (viewport Viewport) Rows() int {
	return viewport.BottomRight.Y - viewport.TopLeft.Y + 1
}

// Cols returns the viewport width.
func (viewport Viewport) Cols() int {
	return viewport.BottomRight.X - viewport.TopLeft.X + 1
}

// Contains reports whether c is inside the viewport.
func (viewport Viewport) Contains(c Coordinate) bool {
	return c.X >= viewport.TopLeft.X && c.X <= viewport.BottomRight.X &&
		c.Y >= viewport.TopLeft.Y && c.Y <= viewport.BottomRight.Y
}

// Index maps a coordinate to its row and column in the grid.
func (viewport Viewport) Index(c Coordinate) (row int, col int) {
	return c.Y - viewport.TopLeft.Y, c.X - viewport.TopLeft.X
}

// Grid is a rendered map, stored row-major.
type Grid struct {
	Viewport
	Cells [][]rune
}

// At returns the glyph rendered for c. c must be inside the viewport.
func (grid *Grid) At(c Coordinate) rune {
	row, col := grid.Index(c)
	return grid.Cells[row][col]
}

// String serializes the grid, one line per row. Every row, including the
// last, ends with a newline.
func (grid *Grid) String() string {
	var sb strings.Builder
	sb.Grow(grid.Rows() * (grid.Cols() + 1))
	for _, row := range grid.Cells {
		for _, symbol := range row {
			sb.WriteRune(symbol)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderGrid classifies every cell of the viewport around start and target.
// Start wins over target, target over obstacles, obstacles over empty space.
func RenderGrid(start Coordinate, target Coordinate, index *ObstacleIndex) (*Grid, error) {
	if index == nil {
		return nil, fmt.Errorf("obstacle index is nil: %w", ErrInvalidArgument)
	}
	viewport := NewViewport(start, target)
	cells := make([][]rune, viewport.Rows())
	for y := viewport.TopLeft.Y; y <= viewport.BottomRight.Y; y++ {
		j := y - viewport.TopLeft.Y
		cells[j] = make([]rune, viewport.Cols())
		for x := viewport.TopLeft.X; x <= viewport.BottomRight.X; x++ {
			i := x - viewport.TopLeft.X
			cells[j][i] = classify(Coordinate{X: x, Y: y}, start, target, index)
		}
	}
	return &Grid{Viewport: viewport, Cells: cells}, nil
}

func classify(c Coordinate, start Coordinate, target Coordinate, index *ObstacleIndex) rune {
	switch c {
	case start:
		return GlyphStart
	case target:
		return GlyphTarget
	}
	if obstacle, ok := index.FindObstacleAt(c.X, c.Y); ok {
		return obstacle.Symbol()
	}
	return GlyphEmpty
}

// RenderSolvedMap renders the map around start and target as text.
func RenderSolvedMap(start Coordinate, target Coordinate, index *ObstacleIndex) (string, error) {
	grid, err := RenderGrid(start, target, index)
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}
