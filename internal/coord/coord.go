// Package coord holds the immutable integer point every galaxy component
// addresses sectors with.
package coord

import (
	"fmt"
	"math"
)

// Direction is one of the eight compass steps, or None.
// y grows downwards, so Up decreases y.
type Direction int

const (
	None Direction = iota - 1
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var directionNames = [...]string{"up", "up_right", "right", "down_right", "down", "down_left", "left", "up_left"}

var directionSteps = [...]Coordinate{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Valid reports whether d names one of the eight compass directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= UpLeft
}

// Opposite returns the direction pointing the other way; None stays None.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return None
	}
	return (d + 4) % 8
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionNames[d]
}

// Coordinate is a sector address. It carries no bounds; use InBounds.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func New(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y}
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{c.X - o.X, c.Y - o.Y}
}

// Direction returns the neighbour one step towards d. Invalid directions,
// None included, return c unchanged.
func (c Coordinate) Direction(d Direction) Coordinate {
	if !d.Valid() {
		return c
	}
	return c.Add(directionSteps[d])
}

// Distance is the Euclidean distance to o.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx := float64(o.X - c.X)
	dy := float64(o.Y - c.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevDistance is the number of king moves between c and o.
func (c Coordinate) ChebyshevDistance(o Coordinate) int {
	return max(abs(o.X-c.X), abs(o.Y-c.Y))
}

// Bearing buckets the vector from c to o into a compass direction.
//
// Exact diagonals and axis-aligned vectors map directly. Other vectors
// compare the floored Euclidean length against the axis deltas: longer than
// both picks the diagonal, equal to one picks that axis, anything else is
// None.
func (c Coordinate) Bearing(o Coordinate) Direction {
	dx := o.X - c.X
	dy := o.Y - c.Y
	if dx == 0 && dy == 0 {
		return None
	}

	adx, ady := abs(dx), abs(dy)
	if adx == ady {
		return diagonal(dx, dy)
	}
	if dx == 0 {
		if dy < 0 {
			return Up
		}
		return Down
	}
	if dy == 0 {
		if dx < 0 {
			return Left
		}
		return Right
	}

	d := int(math.Floor(c.Distance(o)))
	switch {
	case d > adx && d > ady:
		return diagonal(dx, dy)
	case d == adx:
		if dx < 0 {
			return Left
		}
		return Right
	case d == ady:
		if dy < 0 {
			return Up
		}
		return Down
	}
	return None
}

// InBounds reports whether 0 <= x < max.X and 0 <= y < max.Y.
func (c Coordinate) InBounds(max Coordinate) bool {
	return c.X >= 0 && c.X < max.X && c.Y >= 0 && c.Y < max.Y
}

func diagonal(dx, dy int) Direction {
	switch {
	case dx > 0 && dy < 0:
		return UpRight
	case dx > 0:
		return DownRight
	case dy < 0:
		return UpLeft
	default:
		return DownLeft
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
