// Package route models a fleet order: a fractional position moving towards
// an end point through an optional chain of waypoints.
package route

import (
	"math"

	"galaxy-kernel/internal/coord"
)

// maxProbeTicks caps FirstObstruction's replay.
const maxProbeTicks = 10000

type Mode int

const (
	ModeTravel Mode = iota
	ModeDefend
	ModeFix
	ModeBombed
	ModeExplored
)

var modeNames = [...]string{"travel", "defend", "fix", "bombed", "explored"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// IsTravel reports whether the route moves. Bombed and Explored mark a
// travel route that has done its job on arrival.
func (m Mode) IsTravel() bool {
	return m == ModeTravel || m == ModeBombed || m == ModeExplored
}

// Point is a fractional map position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func PointOf(c coord.Coordinate) Point {
	return Point{X: float64(c.X), Y: float64(c.Y)}
}

// Sector rounds p to the nearest sector.
func (p Point) Sector() coord.Coordinate {
	return coord.New(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func chebyshev(a, b Point) float64 {
	return math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
}

// Blocker answers whether a sector stops movement. *grid.Grid satisfies it.
type Blocker interface {
	IsBlocked(x, y int) bool
}

type Route struct {
	Start        Point
	End          Point
	Waypoints    []Point
	Mode         Mode
	FTLSpeed     int
	RegularSpeed int
}

// New creates a travel route between two sectors.
func New(from, to coord.Coordinate, ftlSpeed, regularSpeed int) *Route {
	return &Route{
		Start:        PointOf(from),
		End:          PointOf(to),
		Mode:         ModeTravel,
		FTLSpeed:     ftlSpeed,
		RegularSpeed: regularSpeed,
	}
}

// NewStationary creates a route that holds at c in a non-travel mode.
func NewStationary(c coord.Coordinate, mode Mode) *Route {
	p := PointOf(c)
	return &Route{Start: p, End: p, Mode: mode}
}

// AddWaypoint queues c after the current end point.
func (r *Route) AddWaypoint(c coord.Coordinate) {
	r.Waypoints = append(r.Waypoints, PointOf(c))
}

// Position is the sector the route currently occupies.
func (r *Route) Position() coord.Coordinate {
	return r.Start.Sector()
}

// Clone returns a deep copy.
func (r *Route) Clone() *Route {
	c := *r
	c.Waypoints = append([]Point(nil), r.Waypoints...)
	return &c
}

// Speed is the effective speed: FTL when set, otherwise regular.
func (r *Route) Speed() int {
	if r.FTLSpeed > 0 {
		return r.FTLSpeed
	}
	if r.RegularSpeed > 0 {
		return r.RegularSpeed
	}
	return 0
}

// Advance moves the route ticks steps towards its target. Each tick moves
// one sector along the dominant axis. With a non-nil blocker a tick that
// would enter a blocked sector is rejected and Advance returns false with
// the route left where it was. Reaching the end pops the next waypoint.
func (r *Route) Advance(b Blocker, ticks int) bool {
	_, ok := r.advance(b, ticks)
	return ok
}

func (r *Route) advance(b Blocker, ticks int) (coord.Coordinate, bool) {
	if !r.Mode.IsTravel() {
		return coord.Coordinate{}, true
	}

	for range ticks {
		remaining := chebyshev(r.Start, r.End)
		if remaining > 0 {
			steps := math.Max(remaining, 1)
			next := Point{
				X: r.Start.X + (r.End.X-r.Start.X)/steps,
				Y: r.Start.Y + (r.End.Y-r.Start.Y)/steps,
			}
			if b != nil {
				sector := next.Sector()
				if b.IsBlocked(sector.X, sector.Y) {
					return sector, false
				}
			}
			r.Start = next
		}

		if r.Start.Sector() == r.End.Sector() && len(r.Waypoints) > 0 {
			r.End = r.Waypoints[0]
			r.Waypoints = r.Waypoints[1:]
		}
	}
	return coord.Coordinate{}, true
}

// IsEndReached is true once the route sits on its end sector with no
// waypoints left. Defend and Fix routes never arrive.
func (r *Route) IsEndReached() bool {
	return r.Mode.IsTravel() && len(r.Waypoints) == 0 && r.Start.Sector() == r.End.Sector()
}

// Distance sums the Chebyshev length of every remaining leg.
func (r *Route) Distance() float64 {
	total := chebyshev(r.Start, r.End)
	prev := r.End
	for _, wp := range r.Waypoints {
		total += chebyshev(prev, wp)
		prev = wp
	}
	return total
}

// TimeEstimate is the number of turns needed at the effective speed, or 0
// when the route has no speed.
func (r *Route) TimeEstimate() int {
	speed := r.Speed()
	if speed == 0 {
		return 0
	}
	return int(math.Ceil(r.Distance() / float64(speed)))
}

// FirstObstruction replays the route on a copy and returns the first
// blocked sector it would run into. The route itself is not modified.
func (r *Route) FirstObstruction(b Blocker) (coord.Coordinate, bool) {
	if b == nil || !r.Mode.IsTravel() {
		return coord.Coordinate{}, false
	}
	probe := r.Clone()
	for range maxProbeTicks {
		if probe.IsEndReached() {
			return coord.Coordinate{}, false
		}
		if sector, ok := probe.advance(b, 1); !ok {
			return sector, true
		}
	}
	return coord.Coordinate{}, false
}
