// Package visibility traces fog-of-war rays from a scanning source.
package visibility

import (
	"math"

	"galaxy-kernel/internal/coord"
)

// DetectionDecay is how much cloak detection strength a ray loses per step.
const DetectionDecay = 10

// Blocker answers whether a sector stops visibility rays. *grid.Grid
// satisfies it.
type Blocker interface {
	IsVisibilityBlocking(x, y int) bool
	InBounds(x, y int) bool
}

// Observer receives the side effects of a scan.
type Observer interface {
	MarkVisible(c coord.Coordinate)
	// DetectCloaked is called for sectors reached while detection strength
	// is still positive.
	DetectCloaked(c coord.Coordinate, strength int)
}

// Propagate recomputes what a scanner at center with the given radius and
// cloak detection reveals for observer.
//
// One ray is cast to every sector of the square [-radius,radius]². A ray
// walks in max(|dx|,|dy|) equal steps, marking each in-range sector it
// enters. It stops once it is farther than radius from center, or right
// after entering a visibility-blocking sector. The center is always visible.
func Propagate(b Blocker, observer Observer, center coord.Coordinate, radius, detection int) {
	if b.InBounds(center.X, center.Y) {
		observer.MarkVisible(center)
		if detection > 0 {
			observer.DetectCloaked(center, detection)
		}
	}
	if radius <= 0 {
		return
	}

	for oy := -radius; oy <= radius; oy++ {
		for ox := -radius; ox <= radius; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			traceRay(b, observer, center, ox, oy, float64(radius), detection)
		}
	}
}

func traceRay(b Blocker, observer Observer, center coord.Coordinate, dx, dy int, radius float64, detection int) {
	steps := max(abs(dx), abs(dy))
	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)

	fx, fy := float64(center.X), float64(center.Y)
	for range steps {
		fx += incX
		fy += incY
		cell := coord.New(int(math.Round(fx)), int(math.Round(fy)))

		if center.Distance(cell) > radius {
			return
		}

		detection -= DetectionDecay
		if b.InBounds(cell.X, cell.Y) {
			observer.MarkVisible(cell)
			if detection > 0 {
				observer.DetectCloaked(cell, detection)
			}
		}

		if b.IsVisibilityBlocking(cell.X, cell.Y) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
