package culture

import (
	"testing"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/grid"
)

func TestBucket(t *testing.T) {
	tests := map[int]int{
		-5: -1, 0: -1, 1: 0, 4: 0, 5: 1, 9: 1, 10: 2, 39: 3, 40: 4,
		639: 7, 640: 8, 1279: 8, 1280: 9, 50000: 9,
	}
	for value, want := range tests {
		if got := Bucket(value); got != want {
			t.Errorf("Bucket(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestStampsAreCentered(t *testing.T) {
	for i, taps := range stamps {
		found := false
		for _, tp := range taps {
			if tp.dx < -stampRadius || tp.dx > stampRadius || tp.dy < -stampRadius || tp.dy > stampRadius {
				t.Fatalf("stamp %d tap %+v outside 15x15", i, tp)
			}
			if tp.dx == 0 && tp.dy == 0 && tp.w == weightFull {
				found = true
			}
		}
		if !found {
			t.Errorf("stamp %d has no full-weight center", i)
		}
	}
}

func TestApplyLowestBucketTouchesOnlyCenter(t *testing.T) {
	g := grid.New(20, 20, 2, nil)
	e := NewEngine(g)

	e.Apply(10, 10, 1, 0)

	if got := g.CultureOf(10, 10, 0); got != 1 {
		t.Fatalf("center culture = %d, want 1", got)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x == 10 && y == 10 {
				continue
			}
			if g.Culture(x, y).Total() != 0 {
				t.Fatalf("sector (%d,%d) changed", x, y)
			}
		}
	}
}

func TestApplyAccumulatesAndResets(t *testing.T) {
	g := grid.New(20, 20, 2, nil)
	e := NewEngine(g)

	e.Apply(10, 10, 1, 1)
	e.Apply(10, 10, 1, 1)
	if got := g.CultureOf(10, 10, 1); got != 2 {
		t.Fatalf("center culture = %d, want 2", got)
	}
	if got := g.CultureOf(10, 10, 0); got != 0 {
		t.Fatalf("other player's culture = %d, want 0", got)
	}

	e.Reset()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if g.Culture(x, y).Total() != 0 {
				t.Fatalf("sector (%d,%d) not reset", x, y)
			}
		}
	}
}

func TestApplyWeights(t *testing.T) {
	g := grid.New(20, 20, 1, nil)
	e := NewEngine(g)

	// bucket 1: full center, two thirds orthogonal, half diagonal
	e.Apply(10, 10, 6, 0)

	tests := []struct {
		x, y, want int
	}{
		{10, 10, 6},
		{11, 10, 4},
		{10, 9, 4},
		{11, 11, 3},
		{12, 10, 0},
	}
	for _, tt := range tests {
		if got := g.CultureOf(tt.x, tt.y, 0); got != tt.want {
			t.Errorf("culture at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestApplyLargestStampNearEdge(t *testing.T) {
	g := grid.New(10, 10, 1, nil)
	e := NewEngine(g)

	e.Apply(0, 0, 5000, 0)

	if got := g.CultureOf(0, 0, 0); got != 5000 {
		t.Errorf("center = %d, want 5000", got)
	}
	if got := g.CultureOf(7, 0, 0); got != 2500 {
		t.Errorf("edge of stamp = %d, want half value 2500", got)
	}
	if got := g.CultureOf(8, 0, 0); got != 0 {
		t.Errorf("beyond stamp radius = %d, want 0", got)
	}
}

func TestRebuildOrdersByPlayer(t *testing.T) {
	g := grid.New(20, 20, 3, nil)
	e := NewEngine(g)

	g.AddCulture(0, 0, 0, 99)
	e.Rebuild([]Source{
		{Player: 2, Position: coord.New(5, 5), Value: 1},
		{Player: 0, Position: coord.New(5, 5), Value: 1},
		{Player: 2, Position: coord.New(5, 5), Value: 1},
	})

	if got := g.CultureOf(0, 0, 0); got != 0 {
		t.Error("Rebuild must reset before replaying")
	}
	power := g.Culture(5, 5)
	if power[0] != 1 || power[1] != 0 || power[2] != 2 {
		t.Errorf("culture at (5,5) = %v, want [1 0 2]", power)
	}
}
