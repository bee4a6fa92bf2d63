package galaxy

import (
	"math"
	"math/rand"

	"galaxy-kernel/internal/coord"
)

// sampler proposes home-system centers. All layouts share the placement
// loop and differ only here.
type sampler interface {
	// next proposes a center for player. ok=false spends the attempt
	// without a candidate.
	next(player int) (c coord.Coordinate, ok bool)
	// fixed reports whether next always proposes the same center for a
	// player, in which case one failure ends the draw.
	fixed() bool
	// redrawable reports whether a fresh sampler from newSampler proposes
	// different fixed centers, making a failed draw worth restarting.
	redrawable() bool
}

func newSampler(layout Layout, opts Options, rng *rand.Rand) sampler {
	uniform := uniformSampler{rng: rng, width: opts.Width, height: opts.Height}
	center := coord.New(opts.Width/2, opts.Height/2)
	outer := float64(opts.Width/2 - RingMargin)

	switch layout {
	case LayoutBorder:
		return ringSampler{center: center, radius: outer, slots: opts.Players}
	case LayoutEldersInMiddle:
		return eldersSampler{
			uniform: uniform,
			rng:     rng,
			center:  center,
			inner:   float64(min(opts.Width, opts.Height) / 6),
			elders:  opts.ElderCount,
		}
	case LayoutTwoRings:
		outerSlots := (opts.Players + 1) / 2
		return twoRingsSampler{
			outer: ringSampler{center: center, radius: outer, slots: outerSlots, rotation: rng.Float64() * 2 * math.Pi},
			inner: ringSampler{center: center, radius: float64(opts.Width / 4), slots: max(opts.Players-outerSlots, 1), rotation: rng.Float64() * 2 * math.Pi},
		}
	default:
		return uniform
	}
}

// uniformSampler picks any center that leaves room for the system footprint.
type uniformSampler struct {
	rng           *rand.Rand
	width, height int
}

func (s uniformSampler) next(int) (coord.Coordinate, bool) {
	return randomCenter(s.rng, s.width, s.height)
}

func (s uniformSampler) fixed() bool      { return false }
func (s uniformSampler) redrawable() bool { return false }

func randomCenter(rng *rand.Rand, width, height int) (coord.Coordinate, bool) {
	spanX := width - 2*edgeMargin
	spanY := height - 2*edgeMargin
	if spanX <= 0 || spanY <= 0 {
		return coord.Coordinate{}, false
	}
	return coord.New(edgeMargin+rng.Intn(spanX), edgeMargin+rng.Intn(spanY)), true
}

// ringSampler spaces slots at even angles around center.
type ringSampler struct {
	center   coord.Coordinate
	radius   float64
	slots    int
	rotation float64
}

func (s ringSampler) next(slot int) (coord.Coordinate, bool) {
	angle := s.rotation + 2*math.Pi*float64(slot)/float64(s.slots)
	return coord.New(
		s.center.X+int(math.Round(s.radius*math.Cos(angle))),
		s.center.Y+int(math.Round(s.radius*math.Sin(angle))),
	), true
}

func (s ringSampler) fixed() bool      { return true }
func (s ringSampler) redrawable() bool { return false }

// eldersSampler keeps elder realms inside the central disc and everyone
// else outside it.
type eldersSampler struct {
	uniform uniformSampler
	rng     *rand.Rand
	center  coord.Coordinate
	inner   float64
	elders  int
}

func (s eldersSampler) next(player int) (coord.Coordinate, bool) {
	if player < s.elders {
		angle := s.rng.Float64() * 2 * math.Pi
		r := s.inner * math.Sqrt(s.rng.Float64())
		return coord.New(
			s.center.X+int(math.Round(r*math.Cos(angle))),
			s.center.Y+int(math.Round(r*math.Sin(angle))),
		), true
	}

	c, ok := s.uniform.next(player)
	if !ok || s.center.Distance(c) < s.inner {
		return coord.Coordinate{}, false
	}
	return c, true
}

func (s eldersSampler) fixed() bool      { return false }
func (s eldersSampler) redrawable() bool { return false }

// twoRingsSampler alternates players between an outer and an inner ring.
// Each ring gets a random rotation, so a draw whose rings collide is
// retried with new rotations.
type twoRingsSampler struct {
	outer, inner ringSampler
}

func (s twoRingsSampler) next(player int) (coord.Coordinate, bool) {
	if player%2 == 0 {
		return s.outer.next(player / 2)
	}
	return s.inner.next(player / 2)
}

func (s twoRingsSampler) fixed() bool      { return true }
func (s twoRingsSampler) redrawable() bool { return true }
