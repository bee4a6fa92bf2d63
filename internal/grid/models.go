package grid

import "galaxy-kernel/internal/coord"

const (
	// MaxSize bounds both map dimensions.
	MaxSize = 256
	// MaxPlayers bounds the culture vector length.
	MaxPlayers = 16
	// MaxSquareValue is the largest registry index a SquareInfo can carry.
	MaxSquareValue = 32767
)

type SquareType uint8

const (
	SquareEmpty SquareType = iota
	SquareSun
	SquarePlanet
	SquareGasPlanet
	SquareBlackHole
	SquareBlackHoleCenter
	SquareAscensionVein
	SquareDeepSpaceStart
	SquareLair
	SquareAnomaly
	squareTypeCount
)

var squareTypeNames = [...]string{
	"empty", "sun", "planet", "gas_planet", "black_hole", "black_hole_center",
	"ascension_vein", "deep_space_start", "lair", "anomaly",
}

func (t SquareType) String() string {
	if t >= squareTypeCount {
		return "unknown"
	}
	return squareTypeNames[t]
}

// Valid reports whether t is a known square type.
func (t SquareType) Valid() bool {
	return t < squareTypeCount
}

// squareClasses is the fixed per-type contribution to the derived predicates.
var squareClasses = [squareTypeCount]TileClass{
	SquareEmpty:           {},
	SquareSun:             {BlocksVisibility: true},
	SquarePlanet:          {},
	SquareGasPlanet:       {BlocksVisibility: true, BlocksMovement: true},
	SquareBlackHole:       {Dangerous: true},
	SquareBlackHoleCenter: {BlocksVisibility: true, BlocksMovement: true, Dangerous: true},
	SquareAscensionVein:   {},
	SquareDeepSpaceStart:  {},
	SquareLair:            {Dangerous: true},
	SquareAnomaly:         {},
}

// SquareInfo tags what occupies a sector. Value indexes the sun or planet
// registry for the types that need one.
type SquareInfo struct {
	Type  SquareType `json:"type"`
	Value int        `json:"value"`
}

// NewSquareInfo builds a SquareInfo with value clamped to 0..MaxSquareValue.
func NewSquareInfo(t SquareType, value int) SquareInfo {
	return SquareInfo{Type: t, Value: clampValue(value)}
}

func (s SquareInfo) IsEmpty() bool {
	return s.Type == SquareEmpty
}

// SunHandle returns the sun this square points at.
func (s SquareInfo) SunHandle() (SunHandle, bool) {
	if s.Type != SquareSun {
		return NoSun, false
	}
	return SunHandle(s.Value), true
}

// PlanetHandle returns the planet registry index this square points at.
func (s SquareInfo) PlanetHandle() (PlanetHandle, bool) {
	if s.Type != SquarePlanet && s.Type != SquareGasPlanet {
		return NoPlanet, false
	}
	return PlanetHandle(s.Value), true
}

func clampValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSquareValue {
		return MaxSquareValue
	}
	return v
}

// SunHandle indexes the grid's sun list.
type SunHandle int

// PlanetHandle indexes an external planet registry.
type PlanetHandle int

const (
	NoSun    SunHandle    = -1
	NoPlanet PlanetHandle = -1
)

type SunType uint8

const (
	SunYellow SunType = iota
	SunRed
	SunWhite
	SunBlue
	SunNeutron
	sunTypeCount
)

// SunTypeCount is the number of distinct sun types.
const SunTypeCount = int(sunTypeCount)

var sunTypeNames = [...]string{"yellow", "red", "white", "blue", "neutron"}

func (t SunType) String() string {
	if t >= sunTypeCount {
		return "unknown"
	}
	return sunTypeNames[t]
}

type Sun struct {
	Name   string           `json:"name"`
	Center coord.Coordinate `json:"center"`
	Type   SunType          `json:"type"`
}

// TileClass is what the tile catalog says about a tile index.
type TileClass struct {
	BlocksVisibility bool `yaml:"blocks_visibility" json:"blocks_visibility"`
	BlocksMovement   bool `yaml:"blocks_movement" json:"blocks_movement"`
	Dangerous        bool `yaml:"dangerous" json:"dangerous"`
}

func (c TileClass) merge(o TileClass) TileClass {
	return TileClass{
		BlocksVisibility: c.BlocksVisibility || o.BlocksVisibility,
		BlocksMovement:   c.BlocksMovement || o.BlocksMovement,
		Dangerous:        c.Dangerous || o.Dangerous,
	}
}

// TileCatalog classifies tile indices. Unknown indices should classify as
// the zero TileClass.
type TileCatalog interface {
	Classify(tileID int) TileClass
}

// StaticCatalog is an in-memory TileCatalog.
type StaticCatalog map[int]TileClass

func (c StaticCatalog) Classify(tileID int) TileClass {
	return c[tileID]
}

// CulturePower holds one sector's per-player culture accumulators.
type CulturePower []int

// Total sums all players' culture in the sector.
func (p CulturePower) Total() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

// Dominant returns the player with the highest strictly positive culture.
// Ties go to the lower player index.
func (p CulturePower) Dominant() (int, bool) {
	best, bestValue := -1, 0
	for i, v := range p {
		if v > bestValue {
			best, bestValue = i, v
		}
	}
	return best, best >= 0
}
