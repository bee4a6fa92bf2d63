package coord

import "testing"

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinate
		want     Direction
	}{
		{"same point", New(0, 0), New(0, 0), None},
		{"true diagonal down right", New(2, 2), New(5, 5), DownRight},
		{"true diagonal up left", New(5, 5), New(2, 2), UpLeft},
		{"true diagonal up right", New(0, 5), New(2, 3), UpRight},
		{"true diagonal down left", New(4, 0), New(1, 3), DownLeft},
		{"straight up", New(3, 3), New(3, 0), Up},
		{"straight down", New(3, 3), New(3, 9), Down},
		{"straight left", New(3, 3), New(0, 3), Left},
		{"straight right", New(3, 3), New(7, 3), Right},
		{"shallow right", New(0, 0), New(3, 1), Right},
		{"shallow left", New(0, 0), New(-3, 2), Left},
		{"steep down", New(0, 0), New(1, 3), Down},
		{"steep up", New(0, 0), New(-1, -4), Up},
		{"off axis long enough for diagonal", New(0, 0), New(4, 3), DownRight},
		{"off axis long enough for diagonal up left", New(0, 0), New(-3, -4), UpLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Bearing(tt.to); got != tt.want {
				t.Errorf("%v.Bearing(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if got := New(0, 0).Distance(New(3, 4)); got != 5.0 {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if got := New(1, 1).ChebyshevDistance(New(4, -1)); got != 3 {
		t.Fatalf("ChebyshevDistance = %d, want 3", got)
	}
}

func TestInBounds(t *testing.T) {
	max := New(10, 10)
	if !New(9, 9).InBounds(max) {
		t.Error("(9,9) should be in bounds")
	}
	if New(10, 9).InBounds(max) {
		t.Error("(10,9) should be out of bounds")
	}
	if New(-1, 0).InBounds(max) {
		t.Error("(-1,0) should be out of bounds")
	}
}

func TestDirectionStep(t *testing.T) {
	c := New(5, 5)
	want := map[Direction]Coordinate{
		Up:        New(5, 4),
		UpRight:   New(6, 4),
		Right:     New(6, 5),
		DownRight: New(6, 6),
		Down:      New(5, 6),
		DownLeft:  New(4, 6),
		Left:      New(4, 5),
		UpLeft:    New(4, 4),
	}
	for d, w := range want {
		if got := c.Direction(d); got != w {
			t.Errorf("Direction(%v) = %v, want %v", d, got, w)
		}
	}
	if got := c.Direction(None); got != c {
		t.Errorf("Direction(None) moved to %v", got)
	}
	if got := c.Direction(Direction(11)); got != c {
		t.Errorf("Direction(11) moved to %v", got)
	}
}

func TestOpposite(t *testing.T) {
	if Up.Opposite() != Down || UpRight.Opposite() != DownLeft || Left.Opposite() != Right {
		t.Fatal("unexpected opposite directions")
	}
	if None.Opposite() != None {
		t.Fatal("None should have no opposite")
	}
}
