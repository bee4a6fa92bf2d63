package grid

import (
	"math/rand"
	"testing"

	"galaxy-kernel/internal/coord"
)

type chartObserver struct {
	charted map[SunHandle]int
	bias    map[SunType]float64
}

func (o chartObserver) ChartedPercent(h SunHandle) int   { return o.charted[h] }
func (o chartObserver) SunTypeBias(t SunType) float64 { return o.bias[t] }

func sunGrid() *Grid {
	g := New(60, 60, 2, nil)
	g.AddSun(Sun{Name: "Near", Center: coord.New(5, 0), Type: SunRed})
	g.AddSun(Sun{Name: "Mid", Center: coord.New(10, 0), Type: SunYellow})
	g.AddSun(Sun{Name: "Far", Center: coord.New(40, 0), Type: SunYellow})
	return g
}

func TestNearestUnchartedSun(t *testing.T) {
	g := sunGrid()
	origin := coord.New(0, 0)

	obs := chartObserver{charted: map[SunHandle]int{}}
	h, ok := g.NearestUnchartedSun(origin, obs, NoSun, false, nil)
	if !ok || h != 0 {
		t.Fatalf("got %d,%v want 0,true", h, ok)
	}

	h, _ = g.NearestUnchartedSun(origin, obs, 0, false, nil)
	if h != 1 {
		t.Errorf("excluding sun 0: got %d, want 1", h)
	}

	obs.bias = map[SunType]float64{SunRed: 20}
	h, _ = g.NearestUnchartedSun(origin, obs, NoSun, false, nil)
	if h != 1 {
		t.Errorf("red bias should push target to sun 1, got %d", h)
	}

	obs = chartObserver{charted: map[SunHandle]int{0: 80, 1: 50}}
	h, _ = g.NearestUnchartedSun(origin, obs, NoSun, false, nil)
	if h != 2 {
		t.Errorf("charted suns should be skipped, got %d", h)
	}
}

func TestNearestUnchartedSunFallsBackToLeastCharted(t *testing.T) {
	g := sunGrid()
	obs := chartObserver{charted: map[SunHandle]int{0: 90, 1: 70, 2: 60}}
	h, ok := g.NearestUnchartedSun(coord.New(0, 0), obs, NoSun, false, nil)
	if !ok || h != 2 {
		t.Fatalf("got %d,%v want least charted sun 2", h, ok)
	}

	empty := New(10, 10, 2, nil)
	if _, ok := empty.NearestUnchartedSun(coord.New(0, 0), obs, NoSun, false, nil); ok {
		t.Error("grid without suns returned a target")
	}
}

func TestNearestUnchartedSunRandomizesTopTwo(t *testing.T) {
	g := sunGrid()
	obs := chartObserver{charted: map[SunHandle]int{}}
	rng := rand.New(rand.NewSource(1))

	seen := map[SunHandle]bool{}
	for range 64 {
		h, _ := g.NearestUnchartedSun(coord.New(0, 0), obs, NoSun, true, rng)
		seen[h] = true
	}
	if !seen[0] || !seen[1] || seen[2] {
		t.Fatalf("expected only the two best suns, saw %v", seen)
	}
}

func TestEscapeCoordinate(t *testing.T) {
	g := New(10, 10, 2, nil)
	tests := []struct {
		defender, attacker, want coord.Coordinate
	}{
		{coord.New(5, 5), coord.New(2, 5), coord.New(6, 5)},
		{coord.New(5, 5), coord.New(9, 1), coord.New(4, 6)},
		{coord.New(5, 5), coord.New(5, 5), coord.New(5, 5)},
		{coord.New(0, 0), coord.New(3, 3), coord.New(-1, -1)},
	}
	for _, tt := range tests {
		if got := g.EscapeCoordinate(tt.defender, tt.attacker); got != tt.want {
			t.Errorf("EscapeCoordinate(%v,%v) = %v, want %v", tt.defender, tt.attacker, got, tt.want)
		}
	}
}

func TestFreeRandomSpot(t *testing.T) {
	g := New(3, 3, 2, nil)
	for y := range 3 {
		for x := range 3 {
			if x != 2 || y != 1 {
				g.SetSquareInfo(x, y, NewSquareInfo(SquarePlanet, 0))
			}
		}
	}
	rng := rand.New(rand.NewSource(7))
	c, ok := g.FreeRandomSpot(rng)
	if !ok || c != coord.New(2, 1) {
		t.Fatalf("FreeRandomSpot = %v,%v want (2,1)", c, ok)
	}

	g.SetFleetSource(stubFleets{{Owner: 0, Position: coord.New(2, 1)}})
	if _, ok := g.FreeRandomSpot(rng); ok {
		t.Error("occupied grid should report no free spot")
	}
}

func TestFreeWormhole(t *testing.T) {
	g := New(30, 1, 2, nil)
	rng := rand.New(rand.NewSource(3))
	exclude := coord.New(0, 0)
	for range 50 {
		c, ok := g.FreeWormhole(exclude, rng)
		if !ok {
			t.Fatal("expected a wormhole exit")
		}
		if c.Distance(exclude) < MinWormholeJump {
			t.Fatalf("exit %v too close to %v", c, exclude)
		}
	}

	small := New(5, 5, 2, nil)
	if _, ok := small.FreeWormhole(coord.New(2, 2), rng); ok {
		t.Error("no sector of a 5x5 map is far enough for a wormhole")
	}
}

func TestNearestUnchartedSunWithoutObserver(t *testing.T) {
	if h, ok := sunGrid().NearestUnchartedSun(coord.New(0, 0), nil, NoSun, true, rand.New(rand.NewSource(1))); ok || h != NoSun {
		t.Errorf("nil observer = %d,%v want NoSun,false", h, ok)
	}
}
