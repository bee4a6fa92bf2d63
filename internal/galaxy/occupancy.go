package galaxy

import "galaxy-kernel/internal/coord"

// occupancy marks every cell inside the exclusion radius of a placed
// system. It only lives for one generation attempt.
type occupancy struct {
	width, height int
	cells         []uint8
	marked        int
}

func newOccupancy(width, height int) *occupancy {
	return &occupancy{width: width, height: height, cells: make([]uint8, width*height)}
}

func (o *occupancy) inBounds(c coord.Coordinate) bool {
	return c.InBounds(coord.New(o.width, o.height))
}

func (o *occupancy) free(c coord.Coordinate) bool {
	return o.inBounds(c) && o.cells[c.Y*o.width+c.X] == 0
}

// reserve marks every cell closer than radius to center.
func (o *occupancy) reserve(center coord.Coordinate, radius int) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := coord.New(x, y)
			if !o.inBounds(c) || center.Distance(c) >= float64(radius) {
				continue
			}
			i := y*o.width + x
			if o.cells[i] == 0 {
				o.cells[i] = 1
				o.marked++
			}
		}
	}
}

func (o *occupancy) fullness() float64 {
	if len(o.cells) == 0 {
		return 1
	}
	return float64(o.marked) / float64(len(o.cells))
}
