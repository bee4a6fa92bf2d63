package empire

import (
	"bytes"
	"sort"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/planet"
	"galaxy-kernel/internal/route"
	"galaxy-kernel/internal/savegame"
	"galaxy-kernel/internal/shared/errors"
)

// extensionVersion tags the layout of the player and planet block carried
// in the save stream's extension.
const extensionVersion = 1

// victoryShares are the planet shares, in percent, scored by each victory
// threshold.
var victoryShares = [savegame.VictoryThresholds]int{20, 35, 50, 65, 80}

// VictoryThresholds scales the scoring thresholds to a galaxy holding
// planets planets. Every threshold is at least one planet.
func VictoryThresholds(planets int) [savegame.VictoryThresholds]int {
	var out [savegame.VictoryThresholds]int
	for i, share := range victoryShares {
		out[i] = max(planets*share/100, 1)
	}
	return out
}

// Snapshot captures s as a save stream state for the given turn.
func (s *State) Snapshot(turn int, victory [savegame.VictoryThresholds]int, pirateDifficulty int) *savegame.State {
	return &savegame.State{
		Turn:              turn,
		VictoryThresholds: victory,
		PirateDifficulty:  pirateDifficulty,
		Grid:              s.Grid,
		Extension:         s.encodeExtension(),
	}
}

// FromSnapshot rebuilds player state from a decoded stream and then
// rebuilds the culture grid, which the stream does not carry.
func FromSnapshot(saved *savegame.State) (*State, error) {
	s := newState(saved.Grid, planet.NewRegistry())
	if err := s.decodeExtension(saved.Extension); err != nil {
		return nil, err
	}
	savegame.Restore(saved, s.CultureSources())
	return s, nil
}

func (s *State) encodeExtension() []byte {
	w := savegame.NewWriter(1024)
	w.U8(extensionVersion)

	planets := s.Planets.All()
	w.U16(uint16(len(planets)))
	for _, p := range planets {
		w.I16(int(p.Sun))
		w.U8(uint8(p.PlanetIndex))
		w.Text(p.Name)
		w.Text(string(p.Type))
		w.U16(uint16(p.Position.X))
		w.U16(uint16(p.Position.Y))
		w.U16(uint16(p.Size))
		w.I64(p.Population)
		w.I64(p.MaxPopulation)
		w.I16(p.Owner)
		w.Bool(p.Homeworld)
	}

	w.U8(uint8(len(s.Players)))
	for _, p := range s.Players {
		w.Text(p.Name)
		w.Text(p.Race.Name)
		w.I16(p.Race.ScanBonus)

		biases := make([]grid.SunType, 0, len(p.Race.SunBias))
		for t := range p.Race.SunBias {
			biases = append(biases, t)
		}
		sort.Slice(biases, func(i, j int) bool { return biases[i] < biases[j] })
		w.U8(uint8(len(biases)))
		for _, t := range biases {
			w.U8(uint8(t))
			w.F64(p.Race.SunBias[t])
		}

		w.U16(uint16(len(p.Fleets)))
		for _, f := range p.Fleets {
			w.I32(f.ID)
			w.Text(f.Name)
			w.I16(f.ScanRadius)
			w.I16(f.CloakDetection)
			encodeRoute(w, f.Route)
		}

		w.U16(uint16(len(p.Stations)))
		for _, st := range p.Stations {
			w.U16(uint16(st.Position.X))
			w.U16(uint16(st.Position.Y))
			w.I32(st.Culture)
			w.I16(st.ScanRadius)
		}
	}

	w.I32(s.nextFleetID)
	return w.Bytes()
}

// encodeRoute stores the mode and speeds as the packed legacy speed code.
// When both speeds are set only the FTL speed survives.
func encodeRoute(w *savegame.Writer, r *route.Route) {
	w.F64(r.Start.X)
	w.F64(r.Start.Y)
	w.F64(r.End.X)
	w.F64(r.End.Y)
	w.I32(r.SpeedCode())
	w.U16(uint16(len(r.Waypoints)))
	for _, wp := range r.Waypoints {
		w.F64(wp.X)
		w.F64(wp.Y)
	}
}

func decodeRoute(in *savegame.Reader) *route.Route {
	r := &route.Route{
		Start: route.Point{X: in.F64(), Y: in.F64()},
		End:   route.Point{X: in.F64(), Y: in.F64()},
	}
	r.ApplySpeedCode(in.I32())
	if n := int(in.U16()); n > 0 {
		r.Waypoints = make([]route.Point, 0, n)
		for range n {
			r.Waypoints = append(r.Waypoints, route.Point{X: in.F64(), Y: in.F64()})
		}
	}
	return r
}

func (s *State) decodeExtension(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	in := savegame.NewReader(bytes.NewReader(data))

	if v := in.U8(); in.Err() == nil && v != extensionVersion {
		return errors.VersionMismatchf("player block version %d, supported %d", v, extensionVersion)
	}

	count := int(in.U16())
	for range count {
		p := planet.Planet{
			Sun:         grid.SunHandle(in.I16()),
			PlanetIndex: int(in.U8()),
			Name:        in.Text(),
			Type:        planet.PlanetType(in.Text()),
			Position:    coord.New(int(in.U16()), int(in.U16())),
			Size:        int(in.U16()),
		}
		p.Population = in.I64()
		p.MaxPopulation = in.I64()
		p.Owner = in.I16()
		p.Homeworld = in.Bool()
		if in.Err() != nil {
			return errors.WrapInternal("truncated planet block", in.Err())
		}
		s.Planets.Add(p)
	}

	players := int(in.U8())
	for range players {
		p := s.AddPlayer(in.Text(), Race{Name: in.Text(), ScanBonus: in.I16()})

		if n := int(in.U8()); n > 0 {
			p.Race.SunBias = make(map[grid.SunType]float64, n)
			for range n {
				t := grid.SunType(in.U8())
				p.Race.SunBias[t] = in.F64()
			}
		}

		fleets := int(in.U16())
		for range fleets {
			f := &Fleet{
				ID:             in.I32(),
				Owner:          p.Index,
				Name:           in.Text(),
				ScanRadius:     in.I16(),
				CloakDetection: in.I16(),
			}
			f.Route = decodeRoute(in)
			p.Fleets = append(p.Fleets, f)
		}

		stations := int(in.U16())
		for range stations {
			p.Stations = append(p.Stations, &Station{
				Position:   coord.New(int(in.U16()), int(in.U16())),
				Culture:    in.I32(),
				ScanRadius: in.I16(),
			})
		}
		if in.Err() != nil {
			return errors.WrapInternal("truncated player block", in.Err())
		}
	}

	s.nextFleetID = in.I32()
	if in.Err() != nil {
		return errors.WrapInternal("truncated player block", in.Err())
	}
	s.Grid.InvalidateFleets()
	return nil
}
