package visibility

import "galaxy-kernel/internal/coord"

// Map is a per-player fog-of-war layer. Visible and detection state is
// per turn and dropped by Clear; charted state accumulates for the whole game.
type Map struct {
	width, height int
	visible       []bool
	charted       []bool
	detection     []int
}

func NewMap(width, height int) *Map {
	cells := max(width, 0) * max(height, 0)
	return &Map{
		width:     width,
		height:    height,
		visible:   make([]bool, cells),
		charted:   make([]bool, cells),
		detection: make([]int, cells),
	}
}

func (m *Map) index(c coord.Coordinate) (int, bool) {
	if c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return 0, false
	}
	return c.Y*m.width + c.X, true
}

func (m *Map) MarkVisible(c coord.Coordinate) {
	if i, ok := m.index(c); ok {
		m.visible[i] = true
		m.charted[i] = true
	}
}

// DetectCloaked keeps the strongest detection reaching each sector.
func (m *Map) DetectCloaked(c coord.Coordinate, strength int) {
	if i, ok := m.index(c); ok && strength > m.detection[i] {
		m.detection[i] = strength
	}
}

func (m *Map) IsVisible(c coord.Coordinate) bool {
	i, ok := m.index(c)
	return ok && m.visible[i]
}

func (m *Map) IsCharted(c coord.Coordinate) bool {
	i, ok := m.index(c)
	return ok && m.charted[i]
}

// Detection is the strongest cloak detection that reached c this turn.
func (m *Map) Detection(c coord.Coordinate) int {
	if i, ok := m.index(c); ok {
		return m.detection[i]
	}
	return 0
}

// Clear drops this turn's visibility and detection, keeping charted sectors.
func (m *Map) Clear() {
	clear(m.visible)
	clear(m.detection)
}

func (m *Map) VisibleCount() int {
	n := 0
	for _, v := range m.visible {
		if v {
			n++
		}
	}
	return n
}

// ChartedPercent is the share of in-range sectors within radius of center
// that have ever been seen, 0..100.
func (m *Map) ChartedPercent(center coord.Coordinate, radius int) int {
	total, seen := 0, 0
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := coord.New(x, y)
			i, ok := m.index(c)
			if !ok || center.Distance(c) > float64(radius) {
				continue
			}
			total++
			if m.charted[i] {
				seen++
			}
		}
	}
	if total == 0 {
		return 100
	}
	return seen * 100 / total
}
