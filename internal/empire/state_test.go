package empire

import (
	"testing"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/culture"
	"galaxy-kernel/internal/galaxy"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/planet"
	"galaxy-kernel/internal/route"
	"galaxy-kernel/internal/savegame"
	"galaxy-kernel/internal/shared/errors"
)

// twoPlayerGalaxy builds a 30x30 map with one home system per player.
func twoPlayerGalaxy() *galaxy.Galaxy {
	g := grid.New(30, 30, 2, nil)
	planets := planet.NewRegistry()

	var homes []galaxy.HomeSystem
	for i, center := range []coord.Coordinate{coord.New(5, 5), coord.New(24, 24)} {
		sun := g.AddSun(grid.Sun{Name: []string{"Sol", "Vega"}[i], Center: center})
		g.SetSquareInfo(center.X, center.Y, grid.NewSquareInfo(grid.SquareSun, int(sun)))

		pos := center.Add(coord.New(2, 0))
		h := planets.Add(planet.Planet{
			Sun:           sun,
			Name:          planet.Name("Sol", 0),
			Type:          planet.PlanetTypeTerrestrial,
			Position:      pos,
			Size:          100,
			Population:    500000,
			MaxPopulation: 1000000,
			Owner:         i,
			Homeworld:     true,
		})
		g.SetSquareInfo(pos.X, pos.Y, grid.NewSquareInfo(grid.SquarePlanet, int(h)))
		homes = append(homes, galaxy.HomeSystem{Player: i, Sun: sun, Center: center, Homeworld: h})
	}
	planets.Add(planet.Planet{Sun: grid.NoSun, Name: "Drift", Type: planet.PlanetTypeIce, Position: coord.New(15, 15), Owner: planet.NoOwner})

	return &galaxy.Galaxy{Grid: g, Planets: planets, HomeSystems: homes}
}

func TestNewSeatsPlayersWithScouts(t *testing.T) {
	gal := twoPlayerGalaxy()
	s := New(gal, []Race{{Name: "Kessari", ScanBonus: 1}})

	if len(s.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(s.Players))
	}
	if s.Players[0].Race.Name != "Kessari" || s.Players[1].Race.Name != "Human" {
		t.Errorf("races = %q, %q", s.Players[0].Race.Name, s.Players[1].Race.Name)
	}

	for i, p := range s.Players {
		if len(p.Fleets) != 1 {
			t.Fatalf("player %d fleets = %d", i, len(p.Fleets))
		}
		hw, _ := gal.Planets.Get(gal.HomeSystems[i].Homeworld)
		if p.Fleets[0].Position() != hw.Position {
			t.Errorf("player %d scout at %v, want %v", i, p.Fleets[0].Position(), hw.Position)
		}
		cell, ok := s.Grid.FleetAt(hw.Position)
		if !ok || cell.Owner != i || cell.Handle != p.Fleets[0].ID {
			t.Errorf("overlay at %v = %+v,%v", hw.Position, cell, ok)
		}
		if !p.Fleets[0].Idle() {
			t.Errorf("fresh scout %d should be idle", i)
		}
	}

	if f := s.AddFleet(7, "Ghost", coord.New(1, 1), 1); f != nil {
		t.Error("fleet created for an unknown player")
	}
}

func TestCultureSourcesOrder(t *testing.T) {
	s := New(twoPlayerGalaxy(), nil)
	s.AddStation(0, coord.New(10, 10), 15, 2)
	s.AddStation(1, coord.New(20, 20), 0, 2)

	sources := s.CultureSources()
	if len(sources) != 3 {
		t.Fatalf("sources = %+v", sources)
	}
	want := []int{0, 0, 1}
	for i, src := range sources {
		if src.Player != want[i] {
			t.Errorf("source %d player = %d, want %d", i, src.Player, want[i])
		}
	}
	if sources[1].Value != 15 || sources[1].Position != coord.New(10, 10) {
		t.Errorf("station source = %+v", sources[1])
	}
}

func TestScannersApplyRaceBonus(t *testing.T) {
	s := New(twoPlayerGalaxy(), []Race{{Name: "Kessari", ScanBonus: 2}})
	s.AddStation(0, coord.New(10, 10), 5, 1)

	scanners := s.Scanners(s.Players[0])
	if len(scanners) != 3 {
		t.Fatalf("scanners = %+v", scanners)
	}
	if scanners[0].Radius != scoutScan+2 || scanners[0].Detection != scoutDetect {
		t.Errorf("fleet scanner = %+v", scanners[0])
	}
	if scanners[2].Radius != 3 {
		t.Errorf("station scanner = %+v", scanners[2])
	}
}

func TestExplorerChartedPercent(t *testing.T) {
	s := New(twoPlayerGalaxy(), []Race{{Name: "Kessari", SunBias: map[grid.SunType]float64{grid.SunRed: 5}}})
	p := s.Players[0]
	ex := s.Explorer(p)

	if got := ex.ChartedPercent(0); got != 0 {
		t.Errorf("uncharted system = %d%%", got)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			p.Visibility.MarkVisible(coord.New(x, y))
		}
	}
	if got := ex.ChartedPercent(0); got != 100 {
		t.Errorf("charted system = %d%%", got)
	}
	if got := ex.ChartedPercent(99); got != 100 {
		t.Errorf("unknown sun = %d%%, want 100", got)
	}
	if ex.SunTypeBias(grid.SunRed) != 5 || ex.SunTypeBias(grid.SunBlue) != 0 {
		t.Error("sun bias not taken from the race")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New(twoPlayerGalaxy(), []Race{{Name: "Kessari", ScanBonus: 1, SunBias: map[grid.SunType]float64{grid.SunBlue: 2.5}}})
	s.AddStation(1, coord.New(20, 20), 12, 2)

	scout := s.Players[0].Fleets[0]
	scout.Route = route.New(scout.Position(), coord.New(12, 7), 0, 3)
	scout.Route.AddWaypoint(coord.New(14, 14))
	scout.Route.Advance(s.Grid, 2)

	culture.NewEngine(s.Grid).Rebuild(s.CultureSources())
	before := s.Grid.Culture(7, 5)

	data, err := savegame.Marshal(s.Snapshot(9, [savegame.VictoryThresholds]int{1, 2, 3, 4, 5}, 2))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	saved, err := savegame.Unmarshal(data, nil)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	loaded, err := FromSnapshot(saved)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	if loaded.Planets.Len() != 3 || len(loaded.Players) != 2 {
		t.Fatalf("planets %d players %d", loaded.Planets.Len(), len(loaded.Players))
	}
	if hw, _ := loaded.Planets.Get(0); hw.Owner != 0 || !hw.Homeworld || hw.Population != 500000 {
		t.Errorf("homeworld = %+v", hw)
	}
	if drift, _ := loaded.Planets.Get(2); !drift.Rogue() || drift.Owned() {
		t.Errorf("rogue planet = %+v", drift)
	}

	p0 := loaded.Players[0]
	if p0.Race.Name != "Kessari" || p0.Race.ScanBonus != 1 || p0.Race.SunTypeBias(grid.SunBlue) != 2.5 {
		t.Errorf("race = %+v", p0.Race)
	}
	got := p0.Fleets[0].Route
	if got.Start != scout.Route.Start || got.End != scout.Route.End || len(got.Waypoints) != 1 {
		t.Errorf("route = %+v, want %+v", got, scout.Route)
	}
	if got.RegularSpeed != 3 || got.Mode != route.ModeTravel {
		t.Errorf("speed = %d mode %v", got.RegularSpeed, got.Mode)
	}
	if st := loaded.Players[1].Stations; len(st) != 1 || st[0].Culture != 12 {
		t.Errorf("stations = %+v", st)
	}

	after := loaded.Grid.Culture(7, 5)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("culture at (7,5) = %v, want %v", after, before)
		}
	}

	f := loaded.AddFleet(1, "Frigate", coord.New(3, 3), 1)
	if f.ID != 2 {
		t.Errorf("next fleet id = %d, want 2", f.ID)
	}
	if _, ok := loaded.Fleet(0); !ok {
		t.Error("fleet 0 missing after load")
	}
}

func TestExtensionVersionMismatch(t *testing.T) {
	s := New(twoPlayerGalaxy(), nil)
	state := s.Snapshot(1, [savegame.VictoryThresholds]int{}, 0)
	state.Extension[0] = 99

	if _, err := FromSnapshot(state); errors.GetType(err) != errors.ErrorTypeVersionMismatch {
		t.Fatalf("err = %v, want version_mismatch", err)
	}

	state = s.Snapshot(1, [savegame.VictoryThresholds]int{}, 0)
	state.Extension = state.Extension[:len(state.Extension)-2]
	if _, err := FromSnapshot(state); errors.GetType(err) != errors.ErrorTypeInternal {
		t.Fatalf("err = %v, want internal", err)
	}
}

func TestVictoryThresholds(t *testing.T) {
	if got := VictoryThresholds(200); got != [savegame.VictoryThresholds]int{40, 70, 100, 130, 160} {
		t.Errorf("thresholds for 200 planets = %v", got)
	}
	if got := VictoryThresholds(3); got != [savegame.VictoryThresholds]int{1, 1, 1, 1, 2} {
		t.Errorf("thresholds for 3 planets = %v", got)
	}
}
