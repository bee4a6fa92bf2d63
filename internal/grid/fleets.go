package grid

import "galaxy-kernel/internal/coord"

// FleetPosition is what the overlay needs to know about one fleet.
type FleetPosition struct {
	Owner    int
	Handle   int
	Position coord.Coordinate
}

// FleetSource lists every fleet on the map, in insertion order.
type FleetSource interface {
	FleetPositions() []FleetPosition
}

// FleetSourceFunc adapts a function to FleetSource.
type FleetSourceFunc func() []FleetPosition

func (f FleetSourceFunc) FleetPositions() []FleetPosition { return f() }

// FleetCell is one sector of the overlay. When two owners share the sector
// the later one is primary and the earlier one is kept in ConflictOwner.
type FleetCell struct {
	Owner         int
	Handle        int
	ConflictOwner int
}

var emptyFleetCell = FleetCell{Owner: -1, Handle: -1, ConflictOwner: -1}

func (c FleetCell) Occupied() bool   { return c.Owner >= 0 }
func (c FleetCell) InConflict() bool { return c.ConflictOwner >= 0 }

// SetFleetSource installs the fleet list and marks the overlay stale.
func (g *Grid) SetFleetSource(src FleetSource) {
	g.fleetSource = src
	g.fleetsDirty = true
}

// InvalidateFleets marks the overlay stale. Call it whenever a fleet moves,
// is created or is destroyed; the next read rebuilds it.
func (g *Grid) InvalidateFleets() {
	g.fleetsDirty = true
}

// RefreshFleets rebuilds the overlay immediately.
func (g *Grid) RefreshFleets() {
	for i := range g.fleets {
		g.fleets[i] = emptyFleetCell
	}
	g.fleetsDirty = false
	if g.fleetSource == nil {
		return
	}

	for _, f := range g.fleetSource.FleetPositions() {
		if !g.InBounds(f.Position.X, f.Position.Y) || f.Owner < 0 {
			continue
		}
		cell := &g.fleets[g.index(f.Position.X, f.Position.Y)]
		if cell.Occupied() && cell.Owner != f.Owner {
			cell.ConflictOwner = cell.Owner
		}
		cell.Owner = f.Owner
		cell.Handle = f.Handle
	}
}

// FleetAt returns the overlay entry at c, rebuilding the overlay first if
// it is stale.
func (g *Grid) FleetAt(c coord.Coordinate) (FleetCell, bool) {
	if !g.InBounds(c.X, c.Y) {
		return emptyFleetCell, false
	}
	if g.fleetsDirty {
		g.RefreshFleets()
	}
	cell := g.fleets[g.index(c.X, c.Y)]
	return cell, cell.Occupied()
}
