package grid

import (
	"math/rand"

	"galaxy-kernel/internal/coord"
)

const (
	// MaxSpotTries caps FreeRandomSpot and FreeWormhole sampling.
	MaxSpotTries = 1000
	// MinWormholeJump is the minimum distance between a wormhole and its exit.
	MinWormholeJump = 10
	// chartedThreshold is the percentage above which a system counts as charted.
	chartedThreshold = 50
)

// SunObserver is the player or AI asking for exploration targets.
type SunObserver interface {
	// ChartedPercent is how much of the sun's system the observer has seen, 0..100.
	ChartedPercent(h SunHandle) int
	// SunTypeBias is added to the distance score; races avoiding a sun
	// type return a larger bias.
	SunTypeBias(t SunType) float64
}

// NearestUnchartedSun picks an exploration target for observer.
//
// Suns below 50% charted are scored by distance from origin plus the
// observer's sun-type bias; the lowest score wins. With randomizeTopTwo the
// runner-up is returned half the time. When every sun is at least half
// charted, the least charted one is returned regardless of distance. A nil
// observer finds nothing.
func (g *Grid) NearestUnchartedSun(origin coord.Coordinate, observer SunObserver, exclude SunHandle, randomizeTopTwo bool, rng *rand.Rand) (SunHandle, bool) {
	if observer == nil {
		return NoSun, false
	}
	best, second := NoSun, NoSun
	bestScore, secondScore := 0.0, 0.0
	leastCharted, leastPercent := NoSun, 0

	for i, sun := range g.suns {
		h := SunHandle(i)
		if h == exclude {
			continue
		}

		charted := observer.ChartedPercent(h)
		if leastCharted == NoSun || charted < leastPercent {
			leastCharted, leastPercent = h, charted
		}
		if charted >= chartedThreshold {
			continue
		}

		score := origin.Distance(sun.Center) + observer.SunTypeBias(sun.Type)
		switch {
		case best == NoSun || score < bestScore:
			second, secondScore = best, bestScore
			best, bestScore = h, score
		case second == NoSun || score < secondScore:
			second, secondScore = h, score
		}
	}

	if best == NoSun {
		return leastCharted, leastCharted != NoSun
	}
	if randomizeTopTwo && second != NoSun && rng != nil && rng.Intn(2) == 1 {
		return second, true
	}
	return best, true
}

// EscapeCoordinate is the sector one step from defender directly away from
// attacker. It is not checked for blocking.
func (g *Grid) EscapeCoordinate(defender, attacker coord.Coordinate) coord.Coordinate {
	d := defender.Sub(attacker)
	return defender.Add(coord.New(sign(d.X), sign(d.Y)))
}

// IsFree reports whether c is inside the map, not blocked, has an empty
// SquareInfo and no fleet.
func (g *Grid) IsFree(c coord.Coordinate) bool {
	if !g.InBounds(c.X, c.Y) || g.IsBlocked(c.X, c.Y) {
		return false
	}
	if !g.SquareInfo(c.X, c.Y).IsEmpty() {
		return false
	}
	_, occupied := g.FleetAt(c)
	return !occupied
}

// FreeRandomSpot samples up to MaxSpotTries sectors and returns the first free one.
func (g *Grid) FreeRandomSpot(rng *rand.Rand) (coord.Coordinate, bool) {
	return g.sampleFree(rng, func(coord.Coordinate) bool { return true })
}

// FreeWormhole finds a free wormhole exit at least MinWormholeJump sectors
// from exclude.
func (g *Grid) FreeWormhole(exclude coord.Coordinate, rng *rand.Rand) (coord.Coordinate, bool) {
	return g.sampleFree(rng, func(c coord.Coordinate) bool {
		return c != exclude && c.Distance(exclude) >= MinWormholeJump
	})
}

func (g *Grid) sampleFree(rng *rand.Rand, accept func(coord.Coordinate) bool) (coord.Coordinate, bool) {
	for range MaxSpotTries {
		c := coord.New(rng.Intn(g.width), rng.Intn(g.height))
		if g.IsFree(c) && accept(c) {
			return c, true
		}
	}
	return coord.Coordinate{}, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
