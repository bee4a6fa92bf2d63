package grid

import (
	"testing"

	"galaxy-kernel/internal/coord"
)

func TestTileRoundTrip(t *testing.T) {
	g := New(10, 10, 2, nil)
	g.SetTile(3, 3, 7)
	if got := g.TileIndex(3, 3); got != 7 {
		t.Fatalf("TileIndex(3,3) = %d, want 7", got)
	}

	g.SetTile(-1, 0, 7)
	g.SetTile(10, 0, 7)
	if got := g.TileIndex(-1, 0); got != 0 {
		t.Errorf("out-of-range read = %d, want 0", got)
	}
}

func TestSquareInfoClamping(t *testing.T) {
	g := New(10, 10, 2, nil)

	g.SetSquareInfo(1, 1, SquareInfo{Type: SquarePlanet, Value: 40000})
	if got := g.SquareInfo(1, 1); got.Value != MaxSquareValue {
		t.Errorf("Value = %d, want %d", got.Value, MaxSquareValue)
	}

	g.SetSquareInfo(1, 2, NewSquareInfo(SquareSun, -5))
	if got := g.SquareInfo(1, 2); got.Value != 0 || got.Type != SquareSun {
		t.Errorf("SquareInfo = %+v, want sun with value 0", got)
	}

	if got := g.SquareInfo(50, 50); !got.IsEmpty() {
		t.Errorf("out-of-range SquareInfo = %+v, want empty", got)
	}

	g.SetSquareInfo(2, 2, SquareInfo{Type: SquareType(200)})
	if got := g.SquareInfo(2, 2); !got.IsEmpty() {
		t.Errorf("unknown type stored as %+v", got)
	}

	g.ClearSquare(1, 1)
	if !g.SquareInfo(1, 1).IsEmpty() {
		t.Error("ClearSquare left the square occupied")
	}
}

func TestNewClampsDimensions(t *testing.T) {
	g := New(500, 0, 40, nil)
	if g.Width() != MaxSize || g.Height() != 1 || g.Players() != MaxPlayers {
		t.Fatalf("got %dx%d players %d", g.Width(), g.Height(), g.Players())
	}
}

func TestDerivedPredicates(t *testing.T) {
	g := New(10, 10, 2, nil)
	g.SetSquareInfo(0, 0, NewSquareInfo(SquareSun, 0))
	g.SetSquareInfo(1, 0, NewSquareInfo(SquareGasPlanet, 0))
	g.SetSquareInfo(2, 0, NewSquareInfo(SquareBlackHoleCenter, 0))
	g.SetSquareInfo(3, 0, NewSquareInfo(SquarePlanet, 0))
	g.SetSquareInfo(4, 0, NewSquareInfo(SquareBlackHole, 0))

	tests := []struct {
		x                         int
		visibility, blocked, harm bool
	}{
		{0, true, false, false},
		{1, true, true, false},
		{2, true, true, true},
		{3, false, false, false},
		{4, false, false, true},
		{5, false, false, false},
	}
	for _, tt := range tests {
		if got := g.IsVisibilityBlocking(tt.x, 0); got != tt.visibility {
			t.Errorf("IsVisibilityBlocking(%d,0) = %v, want %v", tt.x, got, tt.visibility)
		}
		if got := g.IsBlocked(tt.x, 0); got != tt.blocked {
			t.Errorf("IsBlocked(%d,0) = %v, want %v", tt.x, got, tt.blocked)
		}
		if got := g.IsDangerous(tt.x, 0); got != tt.harm {
			t.Errorf("IsDangerous(%d,0) = %v, want %v", tt.x, got, tt.harm)
		}
	}

	if g.IsBlocked(-3, 4) || g.IsDangerous(99, 99) || g.IsVisibilityBlocking(10, 10) {
		t.Error("out-of-range predicates must be false")
	}
}

func TestCatalogClassification(t *testing.T) {
	catalog := StaticCatalog{
		12: {BlocksMovement: true},
		13: {BlocksVisibility: true, Dangerous: true},
	}
	g := New(5, 5, 2, catalog)
	g.SetTile(1, 1, 12)
	g.SetTile(2, 2, 13)

	if !g.IsBlocked(1, 1) || g.IsVisibilityBlocking(1, 1) {
		t.Error("tile 12 should block movement only")
	}
	if !g.IsVisibilityBlocking(2, 2) || !g.IsDangerous(2, 2) || g.IsBlocked(2, 2) {
		t.Error("tile 13 should block visibility and be dangerous")
	}
}

func TestCultureStorage(t *testing.T) {
	g := New(5, 5, 3, nil)
	g.AddCulture(2, 2, 1, 10)
	g.AddCulture(2, 2, 1, 5)
	g.AddCulture(2, 2, 2, 3)
	g.AddCulture(2, 2, 7, 99)
	g.AddCulture(9, 9, 0, 99)
	g.AddCulture(2, 2, 0, -4)

	power := g.Culture(2, 2)
	if power[0] != 0 || power[1] != 15 || power[2] != 3 {
		t.Fatalf("Culture(2,2) = %v", power)
	}
	if p, ok := power.Dominant(); !ok || p != 1 {
		t.Errorf("Dominant = %d,%v want 1,true", p, ok)
	}
	if power.Total() != 18 {
		t.Errorf("Total = %d, want 18", power.Total())
	}

	power[1] = 1000
	if g.CultureOf(2, 2, 1) != 15 {
		t.Error("Culture must return a copy")
	}

	g.ResetCulture()
	if g.Culture(2, 2).Total() != 0 {
		t.Error("ResetCulture left culture behind")
	}
	if len(g.Culture(-1, -1)) != 3 {
		t.Error("out-of-range culture vector should still have one slot per player")
	}
}

func TestSunRegistry(t *testing.T) {
	g := New(10, 10, 2, nil)
	h := g.AddSun(Sun{Name: "Vega", Center: coord.New(4, 4), Type: SunBlue})
	g.SetSquareInfo(4, 4, NewSquareInfo(SquareSun, int(h)))

	sh, ok := g.SquareInfo(4, 4).SunHandle()
	if !ok || sh != h {
		t.Fatalf("SunHandle = %d,%v", sh, ok)
	}
	sun, ok := g.Sun(sh)
	if !ok || sun.Name != "Vega" {
		t.Fatalf("Sun(%d) = %+v,%v", sh, sun, ok)
	}
	if _, ok := g.Sun(5); ok {
		t.Error("unknown handle should not resolve")
	}
	if _, ok := g.SquareInfo(0, 0).PlanetHandle(); ok {
		t.Error("empty square has no planet handle")
	}
}

type stubFleets []FleetPosition

func (s stubFleets) FleetPositions() []FleetPosition { return s }

func TestFleetOverlayConflict(t *testing.T) {
	g := New(10, 10, 3, nil)
	fleets := stubFleets{
		{Owner: 0, Handle: 1, Position: coord.New(2, 2)},
		{Owner: 0, Handle: 2, Position: coord.New(3, 3)},
		{Owner: 2, Handle: 7, Position: coord.New(2, 2)},
	}
	g.SetFleetSource(fleets)

	cell, ok := g.FleetAt(coord.New(2, 2))
	if !ok {
		t.Fatal("expected fleet at (2,2)")
	}
	if cell.Owner != 2 || cell.Handle != 7 || cell.ConflictOwner != 0 || !cell.InConflict() {
		t.Errorf("conflict cell = %+v", cell)
	}

	cell, _ = g.FleetAt(coord.New(3, 3))
	if cell.InConflict() {
		t.Errorf("single-owner cell flagged in conflict: %+v", cell)
	}

	if _, ok := g.FleetAt(coord.New(4, 4)); ok {
		t.Error("empty sector reported a fleet")
	}
	if _, ok := g.FleetAt(coord.New(-1, 4)); ok {
		t.Error("out-of-range sector reported a fleet")
	}
}

func TestFleetOverlayStaleUntilInvalidated(t *testing.T) {
	g := New(10, 10, 2, nil)
	fleets := stubFleets{{Owner: 1, Handle: 0, Position: coord.New(1, 1)}}
	g.SetFleetSource(FleetSourceFunc(func() []FleetPosition { return fleets }))

	if _, ok := g.FleetAt(coord.New(1, 1)); !ok {
		t.Fatal("expected fleet at (1,1)")
	}

	fleets[0].Position = coord.New(5, 5)
	if _, ok := g.FleetAt(coord.New(1, 1)); !ok {
		t.Fatal("overlay should stay stale until invalidated")
	}

	g.InvalidateFleets()
	if _, ok := g.FleetAt(coord.New(1, 1)); ok {
		t.Error("old position still occupied after invalidation")
	}
	if _, ok := g.FleetAt(coord.New(5, 5)); !ok {
		t.Error("new position not occupied after invalidation")
	}
}
