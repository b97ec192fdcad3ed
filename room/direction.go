package room

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Direction is a cardinal direction on screen. North is up (negative Y).
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"north", "south", "east", "west"}

func Directions() []Direction {
	return []Direction{North, South, East, West}
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Vector returns the unit vector pointing toward the wall in direction d.
func (d Direction) Vector() cp.Vector {
	switch d {
	case North:
		return cp.Vector{X: 0, Y: -1}
	case South:
		return cp.Vector{X: 0, Y: 1}
	case East:
		return cp.Vector{X: 1, Y: 0}
	default:
		return cp.Vector{X: -1, Y: 0}
	}
}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s || name[:1] == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("room: unknown direction %q", s)
}
