package empire

import (
	"fmt"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/culture"
	"galaxy-kernel/internal/galaxy"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/planet"
	"galaxy-kernel/internal/route"
	"galaxy-kernel/internal/visibility"
)

const (
	// ScoutFTLSpeed is the speed of the scout every player starts with.
	ScoutFTLSpeed = 2
	scoutScan     = 3
	scoutDetect   = 30
	// sunChartRadius is the system radius used when measuring how well a
	// sun's system has been charted.
	sunChartRadius = 3
)

var _ grid.FleetSource = (*State)(nil)

// State is every player on one galaxy grid.
type State struct {
	Grid    *grid.Grid
	Planets *planet.Registry
	Players []*Player

	nextFleetID int
}

// New seats one player per home system and gives each a scout parked on
// its homeworld. races are assigned by player index; missing entries get a
// plain race.
func New(g *galaxy.Galaxy, races []Race) *State {
	s := newState(g.Grid, g.Planets)

	for _, home := range g.HomeSystems {
		race := Race{Name: "Human"}
		if home.Player < len(races) {
			race = races[home.Player]
		}
		p := s.AddPlayer(fmt.Sprintf("Player %d", home.Player+1), race)

		at := home.Center
		if hw, ok := g.Planets.Get(home.Homeworld); ok {
			at = hw.Position
		}
		s.AddFleet(p.Index, "Scout", at, ScoutFTLSpeed)
	}
	return s
}

func newState(g *grid.Grid, planets *planet.Registry) *State {
	s := &State{Grid: g, Planets: planets}
	g.SetFleetSource(s)
	return s
}

func (s *State) AddPlayer(name string, race Race) *Player {
	p := &Player{
		Index:      len(s.Players),
		Name:       name,
		Race:       race,
		Visibility: visibility.NewMap(s.Grid.Width(), s.Grid.Height()),
	}
	s.Players = append(s.Players, p)
	return p
}

// Player returns the player with index i.
func (s *State) Player(i int) (*Player, bool) {
	if i < 0 || i >= len(s.Players) {
		return nil, false
	}
	return s.Players[i], true
}

// AddFleet creates a fleet holding position at at. It returns nil for an
// unknown owner.
func (s *State) AddFleet(owner int, name string, at coord.Coordinate, ftlSpeed int) *Fleet {
	p, ok := s.Player(owner)
	if !ok {
		return nil
	}
	r := route.New(at, at, ftlSpeed, 0)
	f := &Fleet{
		ID:             s.nextFleetID,
		Owner:          owner,
		Name:           name,
		Route:          r,
		ScanRadius:     scoutScan,
		CloakDetection: scoutDetect,
	}
	s.nextFleetID++
	p.Fleets = append(p.Fleets, f)
	s.Grid.InvalidateFleets()
	return f
}

// AddStation deploys a station for owner.
func (s *State) AddStation(owner int, at coord.Coordinate, output, scan int) *Station {
	p, ok := s.Player(owner)
	if !ok {
		return nil
	}
	st := &Station{Position: at, Culture: output, ScanRadius: scan}
	p.Stations = append(p.Stations, st)
	return st
}

// FleetPositions lists fleets in player order, then list order.
func (s *State) FleetPositions() []grid.FleetPosition {
	var out []grid.FleetPosition
	for _, p := range s.Players {
		for _, f := range p.Fleets {
			out = append(out, grid.FleetPosition{Owner: p.Index, Handle: f.ID, Position: f.Position()})
		}
	}
	return out
}

// Fleet finds a fleet by ID.
func (s *State) Fleet(id int) (*Fleet, bool) {
	for _, p := range s.Players {
		for _, f := range p.Fleets {
			if f.ID == id {
				return f, true
			}
		}
	}
	return nil, false
}

// CultureSources lists every culture producer: each player's owned planets
// in registry order, then its stations in deployment order.
func (s *State) CultureSources() []culture.Source {
	var out []culture.Source
	for _, p := range s.Players {
		for _, pl := range s.Planets.OwnedBy(p.Index) {
			if v := planet.CultureOutput(pl); v > 0 {
				out = append(out, culture.Source{Player: p.Index, Position: pl.Position, Value: v})
			}
		}
		for _, st := range p.Stations {
			if st.Culture > 0 {
				out = append(out, culture.Source{Player: p.Index, Position: st.Position, Value: st.Culture})
			}
		}
	}
	return out
}

// Scanner is one visibility source of a player.
type Scanner struct {
	Center    coord.Coordinate
	Radius    int
	Detection int
}

// Scanners lists a player's fleets, owned planets and stations as scan
// sources, with the race bonus applied.
func (s *State) Scanners(p *Player) []Scanner {
	var out []Scanner
	for _, f := range p.Fleets {
		out = append(out, Scanner{Center: f.Position(), Radius: f.ScanRadius + p.Race.ScanBonus, Detection: f.CloakDetection})
	}
	for _, pl := range s.Planets.OwnedBy(p.Index) {
		out = append(out, Scanner{Center: pl.Position, Radius: planet.ScanRadius(pl) + p.Race.ScanBonus})
	}
	for _, st := range p.Stations {
		out = append(out, Scanner{Center: st.Position, Radius: st.ScanRadius + p.Race.ScanBonus})
	}
	return out
}

// Explorer adapts a player to grid.SunObserver.
func (s *State) Explorer(p *Player) grid.SunObserver {
	return explorer{grid: s.Grid, player: p}
}

type explorer struct {
	grid   *grid.Grid
	player *Player
}

func (e explorer) ChartedPercent(h grid.SunHandle) int {
	sun, ok := e.grid.Sun(h)
	if !ok {
		return 100
	}
	return e.player.Visibility.ChartedPercent(sun.Center, sunChartRadius)
}

func (e explorer) SunTypeBias(t grid.SunType) float64 {
	return e.player.Race.SunTypeBias(t)
}
