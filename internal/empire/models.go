// Package empire holds the per-player state the simulation kernel runs
// against: fleets, deployed stations and fog of war. Planets stay in the
// shared planet registry and are owned through Planet.Owner.
package empire

import (
	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/route"
	"galaxy-kernel/internal/visibility"
)

// Race carries the traits the kernel consults.
type Race struct {
	Name string `json:"name"`
	// SunBias is added to exploration scores per sun type. Missing types
	// score 0.
	SunBias map[grid.SunType]float64 `json:"sun_bias,omitempty"`
	// ScanBonus extends every fleet and planet scan radius.
	ScanBonus int `json:"scan_bonus"`
}

func (r Race) SunTypeBias(t grid.SunType) float64 {
	return r.SunBias[t]
}

type Fleet struct {
	ID             int
	Owner          int
	Name           string
	Route          *route.Route
	ScanRadius     int
	CloakDetection int
}

func (f *Fleet) Position() coord.Coordinate {
	return f.Route.Position()
}

// Idle reports whether the fleet has no travel left to do.
func (f *Fleet) Idle() bool {
	return !f.Route.Mode.IsTravel() || f.Route.IsEndReached()
}

// Station is a deployed structure radiating culture and scanning around it.
type Station struct {
	Position   coord.Coordinate
	Culture    int
	ScanRadius int
}

type Player struct {
	Index      int
	Name       string
	Race       Race
	Fleets     []*Fleet
	Stations   []*Station
	Visibility *visibility.Map
}
