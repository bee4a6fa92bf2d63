package planet

import "galaxy-kernel/internal/grid"

// Registry is the index-addressed planet list SquareInfo values point into.
// Handles stay stable for the registry's lifetime; planets are never removed.
type Registry struct {
	planets []*Planet
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores p, assigns its ID and returns its handle.
func (r *Registry) Add(p Planet) grid.PlanetHandle {
	p.ID = len(r.planets)
	r.planets = append(r.planets, &p)
	return grid.PlanetHandle(p.ID)
}

// Get resolves h, returning false for handles outside the registry.
func (r *Registry) Get(h grid.PlanetHandle) (*Planet, bool) {
	if h < 0 || int(h) >= len(r.planets) {
		return nil, false
	}
	return r.planets[h], true
}

// At resolves the planet a grid square points at.
func (r *Registry) At(g *grid.Grid, x, y int) (*Planet, bool) {
	h, ok := g.SquareInfo(x, y).PlanetHandle()
	if !ok {
		return nil, false
	}
	return r.Get(h)
}

func (r *Registry) Len() int {
	return len(r.planets)
}

// All returns planets in handle order.
func (r *Registry) All() []*Planet {
	return r.planets
}

// OwnedBy returns player's planets in handle order.
func (r *Registry) OwnedBy(player int) []*Planet {
	var owned []*Planet
	for _, p := range r.planets {
		if p.Owner == player {
			owned = append(owned, p)
		}
	}
	return owned
}
