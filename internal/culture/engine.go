// Package culture spreads per-player influence across the grid with fixed
// diffusion stamps.
package culture

import (
	"fmt"
	"sort"

	"galaxy-kernel/internal/coord"
)

const (
	stampCount  = 10
	stampSize   = 15
	stampRadius = stampSize / 2
)

// Thresholds select the stamp: the highest bucket whose threshold the value
// reaches. The last bucket takes everything from 1280 up.
var Thresholds = [stampCount]int{1, 5, 10, 20, 40, 80, 160, 320, 640, 1280}

type weight uint8

const (
	weightFull weight = iota
	weightThreeQuarters
	weightTwoThirds
	weightHalf
)

func (w weight) apply(value int) int {
	switch w {
	case weightThreeQuarters:
		return value * 3 / 4
	case weightTwoThirds:
		return value * 2 / 3
	case weightHalf:
		return value / 2
	}
	return value
}

type tap struct {
	dx, dy int
	w      weight
}

var stamps = buildStamps()

func buildStamps() [stampCount][]tap {
	var out [stampCount][]tap
	for i, pattern := range stampPatterns {
		for row, line := range pattern {
			if len(line) != stampSize {
				panic(fmt.Sprintf("culture stamp %d row %d has width %d", i, row, len(line)))
			}
			for col, ch := range line {
				t := tap{dx: col - stampRadius, dy: row - stampRadius}
				switch ch {
				case '.':
					continue
				case 'F':
					t.w = weightFull
				case 'Q':
					t.w = weightThreeQuarters
				case 'T':
					t.w = weightTwoThirds
				case 'H':
					t.w = weightHalf
				default:
					panic(fmt.Sprintf("culture stamp %d has unknown cell %q", i, ch))
				}
				out[i] = append(out[i], t)
			}
		}
	}
	return out
}

// Bucket returns the stamp index for value, or -1 when value is below the
// first threshold.
func Bucket(value int) int {
	for i := stampCount - 1; i >= 0; i-- {
		if value >= Thresholds[i] {
			return i
		}
	}
	return -1
}

// Target stores the accumulated culture. *grid.Grid satisfies it.
type Target interface {
	AddCulture(x, y, player, amount int)
	ResetCulture()
}

type Engine struct {
	target Target
}

func NewEngine(target Target) *Engine {
	return &Engine{target: target}
}

// Apply stamps value for player around (cx,cy). Sectors off the map are
// skipped, and repeated calls accumulate.
func (e *Engine) Apply(cx, cy, value, player int) {
	b := Bucket(value)
	if b < 0 {
		return
	}
	for _, t := range stamps[b] {
		e.target.AddCulture(cx+t.dx, cy+t.dy, player, t.w.apply(value))
	}
}

// Reset zeroes every sector.
func (e *Engine) Reset() {
	e.target.ResetCulture()
}

// Source is one culture producer: an owned planet or a deployed station.
type Source struct {
	Player   int
	Position coord.Coordinate
	Value    int
}

// Rebuild resets the grid and replays every source in player-index order,
// keeping list order within a player. The culture grid is never persisted,
// so this runs after every load and at each turn's culture refresh.
func (e *Engine) Rebuild(sources []Source) {
	ordered := append([]Source(nil), sources...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Player < ordered[j].Player
	})

	e.Reset()
	for _, s := range ordered {
		e.Apply(s.Position.X, s.Position.Y, s.Value, s.Player)
	}
}
