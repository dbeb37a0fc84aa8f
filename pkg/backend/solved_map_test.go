package backend

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIndex(t *testing.T, obstacles ...Obstacle) *ObstacleIndex {
	t.Helper()
	index, err := NewObstacleIndex(obstacles)
	require.NoError(t, err)
	return index
}

func lines(rendered string) []string {
	return strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
}

func TestRenderSolvedMapSameStartAndTarget(t *testing.T) {
	rendered, err := RenderSolvedMap(Coordinate{}, Coordinate{}, mustIndex(t))
	require.NoError(t, err)
	assert.Equal(t, ".....\n.....\n..S..\n.....\n.....\n", rendered)
}

func TestRenderSolvedMapHorizontal(t *testing.T) {
	rendered, err := RenderSolvedMap(Coordinate{X: 0, Y: 0}, Coordinate{X: 3, Y: 0}, mustIndex(t))
	require.NoError(t, err)
	rows := lines(rendered)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, row, 8)
	}
	assert.Equal(t, "..S..E..", rows[2])
}

func TestRenderSolvedMapObstacle(t *testing.T) {
	index := mustIndex(t, &Rock{Position: Coordinate{X: 1, Y: 1}, Icon: '#'})
	grid, err := RenderGrid(Coordinate{X: 0, Y: 0}, Coordinate{X: 2, Y: 2}, index)
	require.NoError(t, err)
	assert.Equal(t, '#', grid.At(Coordinate{X: 1, Y: 1}))
	for _, corner := range []Coordinate{
		{X: -2, Y: -2},
		{X: 4, Y: -2},
		{X: -2, Y: 4},
		{X: 4, Y: 4},
	} {
		assert.Equal(t, GlyphEmpty, grid.At(corner), "corner %v", corner)
	}
	expected := "" +
		".......\n" +
		".......\n" +
		"..S....\n" +
		"...#...\n" +
		"....E..\n" +
		".......\n" +
		".......\n"
	assert.Equal(t, expected, grid.String())
}

func TestRenderSolvedMapStartWinsOverObstacle(t *testing.T) {
	index := mustIndex(t, &Rock{Position: Coordinate{X: 5, Y: 5}, Icon: '#'})
	grid, err := RenderGrid(Coordinate{X: 5, Y: 5}, Coordinate{X: 5, Y: 5}, index)
	require.NoError(t, err)
	assert.Equal(t, GlyphStart, grid.At(Coordinate{X: 5, Y: 5}))
	assert.Equal(t, GlyphEmpty, grid.At(Coordinate{X: 4, Y: 5}))
}

func TestRenderSolvedMapTargetWinsOverObstacle(t *testing.T) {
	index := mustIndex(t, &Wall{From: Coordinate{X: -10, Y: -10}, To: Coordinate{X: 10, Y: 10}})
	grid, err := RenderGrid(Coordinate{X: 0, Y: 0}, Coordinate{X: 3, Y: -1}, index)
	require.NoError(t, err)
	assert.Equal(t, GlyphStart, grid.At(Coordinate{X: 0, Y: 0}))
	assert.Equal(t, GlyphTarget, grid.At(Coordinate{X: 3, Y: -1}))
	assert.Equal(t, '#', grid.At(Coordinate{X: 1, Y: 0}))
}

func TestRenderSolvedMapFirstObstacleWins(t *testing.T) {
	at := Coordinate{X: 1, Y: 0}
	first := mustIndex(t, &Rock{Position: at, Icon: 'A'}, &Rock{Position: at, Icon: 'B'})
	second := mustIndex(t, &Rock{Position: at, Icon: 'B'}, &Rock{Position: at, Icon: 'A'})

	grid, err := RenderGrid(Coordinate{}, Coordinate{X: 2}, first)
	require.NoError(t, err)
	assert.Equal(t, 'A', grid.At(at))

	grid, err = RenderGrid(Coordinate{}, Coordinate{X: 2}, second)
	require.NoError(t, err)
	assert.Equal(t, 'B', grid.At(at))
}

func TestRenderSolvedMapViewportSize(t *testing.T) {
	cases := []struct {
		start  Coordinate
		target Coordinate
	}{
		{Coordinate{X: 0, Y: 0}, Coordinate{X: 0, Y: 0}},
		{Coordinate{X: -3, Y: 7}, Coordinate{X: 4, Y: -2}},
		{Coordinate{X: 10, Y: 1}, Coordinate{X: 2, Y: 1}},
		{Coordinate{X: -8, Y: -8}, Coordinate{X: -9, Y: -12}},
	}
	for _, c := range cases {
		rendered, err := RenderSolvedMap(c.start, c.target, mustIndex(t))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(rendered, "\n"))
		rows := lines(rendered)
		assert.Len(t, rows, abs(c.start.Y-c.target.Y)+2*Padding+1, "%v -> %v", c.start, c.target)
		for _, row := range rows {
			assert.Len(t, row, abs(c.start.X-c.target.X)+2*Padding+1, "%v -> %v", c.start, c.target)
		}
	}
}

func TestRenderSolvedMapNegativeCoordinates(t *testing.T) {
	index := mustIndex(t, &Rock{Position: Coordinate{X: -4, Y: -3}})
	rendered, err := RenderSolvedMap(Coordinate{X: -5, Y: -5}, Coordinate{X: -3, Y: -3}, index)
	require.NoError(t, err)
	expected := "" +
		".......\n" +
		".......\n" +
		"..S....\n" +
		".......\n" +
		"...*E..\n" +
		".......\n" +
		".......\n"
	assert.Equal(t, expected, rendered)
}

func TestRenderSolvedMapIgnoresObstaclesOutsideViewport(t *testing.T) {
	index := mustIndex(t, &Rock{Position: Coordinate{X: 100, Y: 100}})
	rendered, err := RenderSolvedMap(Coordinate{}, Coordinate{X: 1, Y: 1}, index)
	require.NoError(t, err)
	assert.NotContains(t, rendered, "*")
	assert.Equal(t, 6*6-2, strings.Count(rendered, "."))
}

func TestRenderSolvedMapDeterministic(t *testing.T) {
	index := mustIndex(t,
		&Wall{From: Coordinate{X: 1, Y: -1}, To: Coordinate{X: 1, Y: 3}},
		&Water{Center: Coordinate{X: 4, Y: 4}, Radius: 1},
	)
	start := Coordinate{X: -1, Y: 0}
	target := Coordinate{X: 5, Y: 2}
	expected, err := RenderSolvedMap(start, target, index)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = RenderSolvedMap(start, target, index)
		}(i)
	}
	wg.Wait()
	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}

func TestRenderSolvedMapNilIndex(t *testing.T) {
	_, err := RenderSolvedMap(Coordinate{}, Coordinate{}, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

type panickingObstacle struct{}

func (panickingObstacle) IsLocationObstructed(x int, y int) bool { panic("broken obstacle") }
func (panickingObstacle) Symbol() rune                           { return '!' }

func TestRenderSolvedMapPropagatesObstaclePanics(t *testing.T) {
	index := mustIndex(t, panickingObstacle{})
	assert.PanicsWithValue(t, "broken obstacle", func() {
		RenderSolvedMap(Coordinate{}, Coordinate{X: 1}, index)
	})
}

func TestViewportIndex(t *testing.T) {
	viewport := NewViewport(Coordinate{X: 3, Y: -2}, Coordinate{X: -1, Y: 4})
	assert.Equal(t, Coordinate{X: -3, Y: -4}, viewport.TopLeft)
	assert.Equal(t, Coordinate{X: 5, Y: 6}, viewport.BottomRight)
	assert.Equal(t, 11, viewport.Rows())
	assert.Equal(t, 9, viewport.Cols())
	row, col := viewport.Index(Coordinate{X: -3, Y: -4})
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	row, col = viewport.Index(Coordinate{X: 5, Y: 6})
	assert.Equal(t, 10, row)
	assert.Equal(t, 8, col)
	assert.True(t, viewport.Contains(Coordinate{X: 0, Y: 0}))
	assert.False(t, viewport.Contains(Coordinate{X: 6, Y: 0}))
}
