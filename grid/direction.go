package grid

import (
	"fmt"
	"math/bits"
)

// Direction is one of the four cardinal movement vectors.
type Direction uint8

const (
	// North moves one row up.
	North Direction = iota
	// East moves one column right.
	East
	// South moves one row down.
	South
	// West moves one column left.
	West
)

// Directions lists every direction in the fixed exploration order N, E, S, W.
var Directions = [4]Direction{North, East, South, West}

// deltas[d] is the (dRow, dCol) unit vector of direction d.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the unit (dRow, dCol) vector of d.
func (d Direction) Delta() (dRow, dCol int) {
	v := deltas[d&3]
	return v[0], v[1]
}

// Opposite returns the reverse direction: N↔S, E↔W.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionSet is a bit set over the four directions.
type DirectionSet uint8

// AllDirections has every direction set.
const AllDirections DirectionSet = 0b1111

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<d
}

// Full reports whether all four directions are present.
func (s DirectionSet) Full() bool {
	return s&AllDirections == AllDirections
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	return bits.OnesCount8(uint8(s & AllDirections))
}

func (s DirectionSet) String() string {
	out := make([]byte, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d.String()...)
		}
	}
	return "{" + string(out) + "}"
}
