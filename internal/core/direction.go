package core

import (
	"fmt"
	"strings"
)

// Direction is one of the nine discrete movement codes.
//
// Sign convention: negative codes point up or left on screen.
//
//	-3  -1   3        NW  N  NE
//	-2   0   2   =>    W  .  E
//	-4   1   4        SW  S  SE
type Direction int

const (
	Stationary Direction = 0
	North      Direction = -1
	South      Direction = 1
	West       Direction = -2
	East       Direction = 2
	NorthEast  Direction = 3
	NorthWest  Direction = -3
	SouthEast  Direction = 4
	SouthWest  Direction = -4
)

// Directions lists every code in draw order for uniform random selection
// (index i maps to code i-4).
var Directions = [9]Direction{SouthWest, NorthWest, West, North, Stationary, South, East, NorthEast, SouthEast}

// Valid reports whether d is one of the nine codes.
func (d Direction) Valid() bool {
	return d >= -4 && d <= 4
}

// Unit returns the per-axis sign of the movement for d.
func (d Direction) Unit() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	case NorthEast:
		return 1, -1
	case NorthWest:
		return -1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	default:
		return 0, 0
	}
}

// Step returns the displacement for one tick moving `speed` pixels on each active axis.
func (d Direction) Step(speed int) (dx, dy int) {
	ux, uy := d.Unit()
	return ux * speed, uy * speed
}

// String returns a compass name for the direction.
func (d Direction) String() string {
	switch d {
	case Stationary:
		return "stationary"
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return "unknown"
	}
}

// ParseDirection converts a compass name ("N", "SE", "stationary") to a code.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "STATIONARY", "NONE":
		return Stationary, nil
	case "N":
		return North, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	case "E":
		return East, nil
	case "NE":
		return NorthEast, nil
	case "NW":
		return NorthWest, nil
	case "SE":
		return SouthEast, nil
	case "SW":
		return SouthWest, nil
	}
	return Stationary, fmt.Errorf("core: unknown direction %q", s)
}
