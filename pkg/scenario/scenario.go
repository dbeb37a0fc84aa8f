// Package scenario loads start, target and obstacles from JSON documents.
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mortenson/solvedmap/pkg/backend"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p *point) coordinate() backend.Coordinate {
	if p == nil {
		return backend.Coordinate{}
	}
	return backend.Coordinate{X: p.X, Y: p.Y}
}

type obstacleSpec struct {
	Kind   string `json:"kind"`
	From   *point `json:"from,omitempty"`
	To     *point `json:"to,omitempty"`
	At     *point `json:"at,omitempty"`
	Center *point `json:"center,omitempty"`
	Radius int    `json:"radius,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type document struct {
	Start     *point         `json:"start"`
	Target    *point         `json:"target"`
	Obstacles []obstacleSpec `json:"obstacles"`
}

// Scenario is a parsed map description.
type Scenario struct {
	Start     backend.Coordinate
	Target    backend.Coordinate
	Obstacles []backend.Obstacle
}

// Index builds an obstacle index in document order.
func (s *Scenario) Index() (*backend.ObstacleIndex, error) {
	return backend.NewObstacleIndex(s.Obstacles)
}

// LoadFile reads a scenario from a JSON file.
func LoadFile(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// Load reads a scenario from r.
func Load(r io.Reader) (*Scenario, error) {
	var doc document
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if doc.Start == nil || doc.Target == nil {
		return nil, fmt.Errorf("scenario needs start and target")
	}
	scenario := &Scenario{
		Start:     doc.Start.coordinate(),
		Target:    doc.Target.coordinate(),
		Obstacles: make([]backend.Obstacle, 0, len(doc.Obstacles)),
	}
	for i, spec := range doc.Obstacles {
		obstacle, err := spec.obstacle()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		scenario.Obstacles = append(scenario.Obstacles, obstacle)
	}
	return scenario, nil
}

func (spec obstacleSpec) obstacle() (backend.Obstacle, error) {
	icon, err := parseSymbol(spec.Symbol)
	if err != nil {
		return nil, err
	}
	switch spec.Kind {
	case "wall":
		if spec.From == nil || spec.To == nil {
			return nil, fmt.Errorf("wall needs from and to")
		}
		return &backend.Wall{From: spec.From.coordinate(), To: spec.To.coordinate(), Icon: icon}, nil
	case "rock":
		if spec.At == nil {
			return nil, fmt.Errorf("rock needs at")
		}
		return &backend.Rock{Position: spec.At.coordinate(), Icon: icon}, nil
	case "water":
		if spec.Center == nil || spec.Radius < 0 {
			return nil, fmt.Errorf("water needs center and a non-negative radius")
		}
		return &backend.Water{Center: spec.Center.coordinate(), Radius: spec.Radius, Icon: icon}, nil
	}
	return nil, fmt.Errorf("unknown obstacle kind %q", spec.Kind)
}

func parseSymbol(symbol string) (rune, error) {
	if symbol == "" {
		return 0, nil
	}
	icon, size := utf8.DecodeRuneInString(symbol)
	if size != len(symbol) || icon == utf8.RuneError {
		return 0, fmt.Errorf("symbol %q must be a single character", symbol)
	}
	switch icon {
	case backend.GlyphStart, backend.GlyphTarget, backend.GlyphEmpty, '\n':
		return 0, fmt.Errorf("symbol %q is reserved", symbol)
	}
	return icon, nil
}
