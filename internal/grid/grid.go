// Package grid owns the galaxy map: tile indices, SquareInfo tags, per-player
// culture vectors and the derived fleet-position overlay.
//
// Every accessor is forgiving. Reads outside the map return tile 0, an empty
// SquareInfo or false; writes outside the map are dropped. AI code probes
// past the edges routinely and relies on this.
package grid

import "galaxy-kernel/internal/coord"

type Grid struct {
	width   int
	height  int
	players int

	tiles   []uint16
	squares []SquareInfo
	culture []int

	suns    []Sun
	catalog TileCatalog

	fleetSource FleetSource
	fleets      []FleetCell
	fleetsDirty bool
}

// New allocates an empty grid. Dimensions are clamped to 1..MaxSize and the
// player count to 1..MaxPlayers. A nil catalog classifies every tile as open.
func New(width, height, players int, catalog TileCatalog) *Grid {
	width = clampInt(width, 1, MaxSize)
	height = clampInt(height, 1, MaxSize)
	players = clampInt(players, 1, MaxPlayers)

	cells := width * height
	return &Grid{
		width:       width,
		height:      height,
		players:     players,
		tiles:       make([]uint16, cells),
		squares:     make([]SquareInfo, cells),
		culture:     make([]int, cells*players),
		catalog:     catalog,
		fleets:      make([]FleetCell, cells),
		fleetsDirty: true,
	}
}

func (g *Grid) Width() int   { return g.width }
func (g *Grid) Height() int  { return g.height }
func (g *Grid) Players() int { return g.players }

// Size returns the exclusive upper bound usable with Coordinate.InBounds.
func (g *Grid) Size() coord.Coordinate {
	return coord.New(g.width, g.height)
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// SetCatalog swaps the tile classification source.
func (g *Grid) SetCatalog(catalog TileCatalog) {
	g.catalog = catalog
}

func (g *Grid) TileIndex(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return int(g.tiles[g.index(x, y)])
}

// SetTile stores tile at (x,y). Values outside uint16 are clamped.
func (g *Grid) SetTile(x, y, tile int) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.index(x, y)] = uint16(clampInt(tile, 0, 0xffff))
}

func (g *Grid) SquareInfo(x, y int) SquareInfo {
	if !g.InBounds(x, y) {
		return SquareInfo{}
	}
	return g.squares[g.index(x, y)]
}

func (g *Grid) SetSquareInfo(x, y int, info SquareInfo) {
	if !g.InBounds(x, y) {
		return
	}
	info.Value = clampValue(info.Value)
	if !info.Type.Valid() {
		info = SquareInfo{}
	}
	g.squares[g.index(x, y)] = info
}

// ClearSquare resets (x,y) to Empty.
func (g *Grid) ClearSquare(x, y int) {
	g.SetSquareInfo(x, y, SquareInfo{})
}

func (g *Grid) classify(x, y int) TileClass {
	if !g.InBounds(x, y) {
		return TileClass{}
	}
	class := squareClasses[g.squares[g.index(x, y)].Type]
	if g.catalog != nil {
		class = class.merge(g.catalog.Classify(int(g.tiles[g.index(x, y)])))
	}
	return class
}

func (g *Grid) IsVisibilityBlocking(x, y int) bool {
	return g.classify(x, y).BlocksVisibility
}

func (g *Grid) IsBlocked(x, y int) bool {
	return g.classify(x, y).BlocksMovement
}

func (g *Grid) IsDangerous(x, y int) bool {
	return g.classify(x, y).Dangerous
}

// AddSun registers s and returns its handle. The sun square itself is not
// written; callers place it with SetSquareInfo.
func (g *Grid) AddSun(s Sun) SunHandle {
	g.suns = append(g.suns, s)
	return SunHandle(len(g.suns) - 1)
}

func (g *Grid) Sun(h SunHandle) (Sun, bool) {
	if h < 0 || int(h) >= len(g.suns) {
		return Sun{}, false
	}
	return g.suns[h], true
}

// Suns exposes the registry in handle order. Callers must not modify it.
func (g *Grid) Suns() []Sun {
	return g.suns
}

// SetSuns replaces the sun registry, used when restoring a save.
func (g *Grid) SetSuns(suns []Sun) {
	g.suns = append([]Sun(nil), suns...)
}

// AddCulture adds amount to player's accumulator at (x,y). Out-of-range
// sectors, unknown players and negative amounts are ignored.
func (g *Grid) AddCulture(x, y, player, amount int) {
	if !g.InBounds(x, y) || player < 0 || player >= g.players || amount <= 0 {
		return
	}
	g.culture[g.index(x, y)*g.players+player] += amount
}

// Culture returns a copy of the sector's culture vector. Out-of-range
// sectors return an all-zero vector.
func (g *Grid) Culture(x, y int) CulturePower {
	power := make(CulturePower, g.players)
	if !g.InBounds(x, y) {
		return power
	}
	base := g.index(x, y) * g.players
	copy(power, g.culture[base:base+g.players])
	return power
}

func (g *Grid) CultureOf(x, y, player int) int {
	if !g.InBounds(x, y) || player < 0 || player >= g.players {
		return 0
	}
	return g.culture[g.index(x, y)*g.players+player]
}

// ResetCulture zeroes every sector's culture vector.
func (g *Grid) ResetCulture() {
	clear(g.culture)
}

// CountSquares returns how many sectors carry type t.
func (g *Grid) CountSquares(t SquareType) int {
	n := 0
	for _, s := range g.squares {
		if s.Type == t {
			n++
		}
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
