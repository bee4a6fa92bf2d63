package galaxy

import (
	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/planet"
	"galaxy-kernel/internal/shared/errors"
)

const (
	// MaxPlacementTries caps every bounded-retry placement loop.
	MaxPlacementTries = 10000
	// FillThreshold is the occupancy share at which random systems stop.
	FillThreshold = 0.60
	// MaxLayoutDraws caps how often a rotated ring layout is redrawn after
	// its home systems collide.
	MaxLayoutDraws = 100
	// RingMargin is subtracted from half the map width for the border ring.
	RingMargin = 10

	systemRadius = 2
	edgeMargin   = systemRadius + 1
)

type Layout string

const (
	LayoutRandom         Layout = "random"
	LayoutBorder         Layout = "border"
	LayoutEldersInMiddle Layout = "elders"
	LayoutTwoRings       Layout = "two_rings"
)

func (l Layout) Valid() bool {
	switch l {
	case LayoutRandom, LayoutBorder, LayoutEldersInMiddle, LayoutTwoRings:
		return true
	}
	return false
}

// Options is the flat set of generation settings. PlanetaryEventChance,
// KarmaType and KarmaSpeed are validated and carried on Galaxy.Options for
// the event and karma systems; generation itself does not read them.
type Options struct {
	Width                int    `json:"width"`
	Height               int    `json:"height"`
	Players              int    `json:"players"`
	SystemSpacing        int    `json:"system_spacing"`
	Layout               Layout `json:"layout"`
	RogueTier            int    `json:"rogue_tier"`
	PlanetaryEventChance int    `json:"planetary_event_chance"`
	PirateTier           int    `json:"pirate_tier"`
	PirateDifficulty     int    `json:"pirate_difficulty"`
	AnomalyTier          int    `json:"anomaly_tier"`
	KarmaType            int    `json:"karma_type"`
	KarmaSpeed           int    `json:"karma_speed"`
	ElderHeadStart       int    `json:"elder_head_start"`
	ElderCount           int    `json:"elder_count"`
	Seed                 int64  `json:"seed"`
}

func DefaultOptions() Options {
	return Options{
		Width:            75,
		Height:           75,
		Players:          6,
		SystemSpacing:    12,
		Layout:           LayoutRandom,
		RogueTier:        1,
		PirateTier:       2,
		PirateDifficulty: 1,
		AnomalyTier:      1,
		KarmaSpeed:       1,
	}
}

func (o Options) Validate() error {
	if o.Width < 1 || o.Width > grid.MaxSize || o.Height < 1 || o.Height > grid.MaxSize {
		return errors.Validationf("map size %dx%d outside 1..%d", o.Width, o.Height, grid.MaxSize)
	}
	if o.Players < 2 || o.Players > grid.MaxPlayers {
		return errors.Validationf("player count %d outside 2..%d", o.Players, grid.MaxPlayers)
	}
	if o.SystemSpacing < 1 {
		return errors.Validation("system spacing must be positive")
	}
	if !o.Layout.Valid() {
		return errors.Validationf("unknown layout %q", o.Layout)
	}
	if o.RogueTier < 0 || o.RogueTier > 3 {
		return errors.Validationf("rogue planet tier %d outside 0..3", o.RogueTier)
	}
	if o.PlanetaryEventChance < 0 || o.PlanetaryEventChance > 99 {
		return errors.Validationf("planetary event chance %d outside 0..99", o.PlanetaryEventChance)
	}
	if o.PirateTier < 0 || o.PirateTier > 6 {
		return errors.Validationf("pirate tier %d outside 0..6", o.PirateTier)
	}
	if o.AnomalyTier < 0 || o.AnomalyTier > 2 {
		return errors.Validationf("anomaly tier %d outside 0..2", o.AnomalyTier)
	}
	if o.ElderCount < 0 || o.ElderCount > o.Players {
		return errors.Validationf("elder count %d outside 0..%d", o.ElderCount, o.Players)
	}
	return nil
}

// HomeSystem is a player's starting system.
type HomeSystem struct {
	Player    int
	Sun       grid.SunHandle
	Center    coord.Coordinate
	Homeworld grid.PlanetHandle
	Elder     bool
}

// Lair is a deep-space anchor seeded with hostile pirates.
type Lair struct {
	Position   coord.Coordinate
	Difficulty int
}

type Galaxy struct {
	Grid        *grid.Grid
	Planets     *planet.Registry
	HomeSystems []HomeSystem
	Anchors     []coord.Coordinate
	Lairs       []Lair

	// Options holds the settings used, with the resolved seed.
	Options Options
	// Layout is the layout actually used, which differs from Options.Layout
	// after a fallback.
	Layout Layout
}

// ScanLairs lists the lairs written on g, in row-major order. Loaded games
// use it since the lair list itself is not saved.
func ScanLairs(g *grid.Grid) []Lair {
	var lairs []Lair
	for y := range g.Height() {
		for x := range g.Width() {
			if sq := g.SquareInfo(x, y); sq.Type == grid.SquareLair {
				lairs = append(lairs, Lair{Position: coord.New(x, y), Difficulty: sq.Value})
			}
		}
	}
	return lairs
}
