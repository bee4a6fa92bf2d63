package planet

import (
	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/grid"
)

type PlanetType string

const (
	PlanetTypeBarren      PlanetType = "barren"
	PlanetTypeTerrestrial PlanetType = "terrestrial"
	PlanetTypeGasGiant    PlanetType = "gas_giant"
	PlanetTypeIce         PlanetType = "ice"
	PlanetTypeVolcanic    PlanetType = "volcanic"
)

// SquareType is the grid tag a planet of this type is placed with.
func (t PlanetType) SquareType() grid.SquareType {
	if t == PlanetTypeGasGiant {
		return grid.SquareGasPlanet
	}
	return grid.SquarePlanet
}

// NoOwner marks an unclaimed planet.
const NoOwner = -1

type Planet struct {
	ID            int              `json:"id"`
	Sun           grid.SunHandle   `json:"sun"`
	PlanetIndex   int              `json:"planet_index"`
	Name          string           `json:"name"`
	Type          PlanetType       `json:"type"`
	Position      coord.Coordinate `json:"position"`
	Size          int              `json:"size"`
	Population    int64            `json:"population"`
	MaxPopulation int64            `json:"max_population"`
	Owner         int              `json:"owner"`
	Homeworld     bool             `json:"homeworld"`
}

func (p *Planet) Rogue() bool {
	return p.Sun == grid.NoSun
}

func (p *Planet) Owned() bool {
	return p.Owner != NoOwner
}
