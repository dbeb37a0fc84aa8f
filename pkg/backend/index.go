package backend

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required collaborator is missing.
var ErrInvalidArgument = errors.New("invalid argument")

// ObstacleIndex is an ordered, read-only set of obstacles. When several
// obstacles cover the same cell the first one added wins.
type ObstacleIndex struct {
	obstacles []Obstacle
}

// NewObstacleIndex copies obstacles into a new index. A nil slice gives an
// empty index, a nil obstacle is rejected.
func NewObstacleIndex(obstacles []Obstacle) (*ObstacleIndex, error) {
	index := &ObstacleIndex{
		obstacles: make([]Obstacle, 0, len(obstacles)),
	}
	for i, obstacle := range obstacles {
		if obstacle == nil {
			return nil, fmt.Errorf("obstacle %d is nil: %w", i, ErrInvalidArgument)
		}
		index.obstacles = append(index.obstacles, obstacle)
	}
	return index, nil
}

// FindObstacleAt returns the first obstacle covering (x, y).
func (index *ObstacleIndex) FindObstacleAt(x int, y int) (Obstacle, bool) {
	for _, obstacle := range index.obstacles {
		if obstacle.IsLocationObstructed(x, y) {
			return obstacle, true
		}
	}
	return nil, false
}

// Len returns the number of obstacles in the index.
func (index *ObstacleIndex) Len() int {
	return len(index.obstacles)
}
