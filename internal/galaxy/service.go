package galaxy

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/planet"
	"galaxy-kernel/internal/shared/errors"
)

var sunNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Deneb", "Antares", "Pollux", "Spica", "Regulus", "Castor", "Mira",
	"Achernar", "Aldebaran", "Canopus", "Fomalhaut", "Hadar", "Mimosa",
}

var ringOffsets = []coord.Coordinate{
	{X: 0, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 0}, {X: 2, Y: 2},
	{X: 0, Y: 2}, {X: -2, Y: 2}, {X: -2, Y: 0}, {X: -2, Y: -2},
}

type Service struct {
	catalog grid.TileCatalog
	logger  *slog.Logger
}

func NewService(catalog grid.TileCatalog, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service")

	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Generate builds a galaxy for opts. When the requested layout cannot fit
// every home system it retries once with the border layout before giving up
// with a too_crowded error.
func (s *Service) Generate(opts Options) (*Galaxy, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "generate",
		"width", opts.Width, "height", opts.Height, "players", opts.Players, "layout", opts.Layout)

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	logger.Info("Generating galaxy", "seed", opts.Seed)

	layouts := []Layout{opts.Layout}
	if opts.Layout != LayoutBorder {
		layouts = append(layouts, LayoutBorder)
	}

	var lastErr error
	for _, layout := range layouts {
		g, err := s.generateWithLayout(opts, layout, rng)
		if err == nil {
			logger.Info("Galaxy generated",
				"layout_used", layout,
				"suns", len(g.Grid.Suns()),
				"planets", g.Planets.Len(),
				"anchors", len(g.Anchors),
				"lairs", len(g.Lairs))
			return g, nil
		}
		if !errors.IsTooCrowded(err) {
			logger.Error("Galaxy generation failed", "layout", layout, "error", err)
			return nil, err
		}
		logger.Warn("Layout too crowded, trying fallback", "layout", layout, "error", err)
		lastErr = err
	}

	logger.Error("No layout could place every home system", "error", lastErr)
	return nil, lastErr
}

func (s *Service) generateWithLayout(opts Options, layout Layout, rng *rand.Rand) (*Galaxy, error) {
	logger := s.logger.With("component", "galaxy_service", "layout", layout)

	var b *builder
	tries := 0
	for draw := 1; ; draw++ {
		b = &builder{
			opts:    opts,
			layout:  layout,
			rng:     rng,
			grid:    grid.New(opts.Width, opts.Height, opts.Players, s.catalog),
			planets: planet.NewRegistry(),
			occ:     newOccupancy(opts.Width, opts.Height),
			logger:  logger,
		}

		smp := newSampler(layout, opts, rng)
		err := b.placeHomeSystems(smp)
		if err == nil {
			break
		}
		tries += b.tries
		if !errors.IsTooCrowded(err) || !smp.redrawable() || tries >= MaxPlacementTries || draw >= MaxLayoutDraws {
			return nil, err
		}
		logger.Debug("Home systems collided, redrawing layout", "draw", draw, "tries", tries, "error", err)
	}

	b.fillRandomSystems()
	b.placeRoguePlanets()
	b.placeDeepSpace()
	b.placeAnomalies()

	return &Galaxy{
		Grid:        b.grid,
		Planets:     b.planets,
		HomeSystems: b.homes,
		Anchors:     b.anchors,
		Lairs:       b.lairs,
		Options:     opts,
		Layout:      layout,
	}, nil
}

// builder carries the state of one generation attempt.
type builder struct {
	opts    Options
	layout  Layout
	rng     *rand.Rand
	grid    *grid.Grid
	planets *planet.Registry
	occ     *occupancy
	logger  *slog.Logger
	tries   int

	homes   []HomeSystem
	anchors []coord.Coordinate
	lairs   []Lair
}

// fits reports whether a system centered on c keeps its footprint on the
// map and its center outside every other system's exclusion radius.
func (b *builder) fits(c coord.Coordinate) bool {
	if c.X < edgeMargin || c.Y < edgeMargin || c.X >= b.opts.Width-edgeMargin || c.Y >= b.opts.Height-edgeMargin {
		return false
	}
	return b.occ.free(c) && b.grid.SquareInfo(c.X, c.Y).IsEmpty()
}

func (b *builder) placeHomeSystems(smp sampler) error {
	for player := 0; player < b.opts.Players; player++ {
		center, err := b.findHomeCenter(smp, player)
		if err != nil {
			return err
		}

		elder := b.layout == LayoutEldersInMiddle && player < b.opts.ElderCount
		sun, planets := b.placeSystem(center, 3+b.rng.Intn(4))
		if len(planets) == 0 {
			return errors.TooCrowdedf("no room for a homeworld around %v", center)
		}
		home := b.claimHomeworld(planets[0], player, elder)
		b.homes = append(b.homes, HomeSystem{
			Player:    player,
			Sun:       sun,
			Center:    center,
			Homeworld: home,
			Elder:     elder,
		})
	}
	return nil
}

func (b *builder) findHomeCenter(smp sampler, player int) (coord.Coordinate, error) {
	for attempt := 0; attempt < MaxPlacementTries; attempt++ {
		b.tries++
		c, ok := smp.next(player)
		if ok && b.fits(c) {
			return c, nil
		}
		if smp.fixed() {
			return coord.Coordinate{}, errors.TooCrowdedf("home system %d of %d overlaps at %v", player+1, b.opts.Players, c)
		}
	}
	return coord.Coordinate{}, errors.TooCrowdedf("placed %d of %d home systems within %d tries", player, b.opts.Players, MaxPlacementTries)
}

// placeSystem writes a sun at center with up to planetCount planets on the
// ring around it and reserves its exclusion radius. At least one planet is
// placed when any ring cell is empty.
func (b *builder) placeSystem(center coord.Coordinate, planetCount int) (grid.SunHandle, []grid.PlanetHandle) {
	index := len(b.grid.Suns())
	name := sunNames[index%len(sunNames)]
	if index >= len(sunNames) {
		name = fmt.Sprintf("%s %d", name, index/len(sunNames)+1)
	}

	sun := b.grid.AddSun(grid.Sun{
		Name:   name,
		Center: center,
		Type:   grid.SunType(b.rng.Intn(grid.SunTypeCount)),
	})
	b.grid.SetSquareInfo(center.X, center.Y, grid.NewSquareInfo(grid.SquareSun, int(sun)))
	b.occ.reserve(center, b.opts.SystemSpacing)

	var handles []grid.PlanetHandle
	for _, slot := range b.rng.Perm(len(ringOffsets)) {
		if len(handles) >= planetCount {
			break
		}
		pos := center.Add(ringOffsets[slot])
		if !b.grid.InBounds(pos.X, pos.Y) || !b.grid.SquareInfo(pos.X, pos.Y).IsEmpty() {
			continue
		}

		kind := planet.RandomType(b.rng)
		if len(handles) == 0 {
			kind = planet.PlanetTypeTerrestrial
		}
		size := planet.RandomSize(b.rng)
		h := b.planets.Add(planet.Planet{
			Sun:           sun,
			PlanetIndex:   len(handles),
			Name:          planet.Name(name, len(handles)),
			Type:          kind,
			Position:      pos,
			Size:          size,
			MaxPopulation: planet.MaxPopulationFor(kind, size),
			Owner:         planet.NoOwner,
		})
		b.grid.SetSquareInfo(pos.X, pos.Y, grid.NewSquareInfo(kind.SquareType(), int(h)))
		handles = append(handles, h)
	}
	return sun, handles
}

func (b *builder) claimHomeworld(h grid.PlanetHandle, player int, elder bool) grid.PlanetHandle {
	p, _ := b.planets.Get(h)
	p.Owner = player
	p.Homeworld = true
	p.Population = p.MaxPopulation / 2
	if elder {
		p.Population = min(p.MaxPopulation, p.Population+int64(b.opts.ElderHeadStart)*50000)
	}
	return h
}

func (b *builder) fillRandomSystems() {
	placed := 0
	for attempt := 0; attempt < MaxPlacementTries && b.occ.fullness() < FillThreshold; attempt++ {
		c, ok := randomCenter(b.rng, b.opts.Width, b.opts.Height)
		if !ok || !b.fits(c) {
			continue
		}
		b.placeSystem(c, 1+b.rng.Intn(4))
		placed++
	}
	b.logger.Debug("Random systems placed", "count", placed, "fullness", b.occ.fullness())
}

// sampleEmpty draws random cells until accept passes or the cap is hit.
func (b *builder) sampleEmpty(accept func(coord.Coordinate) bool) (coord.Coordinate, bool) {
	for attempt := 0; attempt < MaxPlacementTries; attempt++ {
		c := coord.New(b.rng.Intn(b.opts.Width), b.rng.Intn(b.opts.Height))
		if b.grid.SquareInfo(c.X, c.Y).IsEmpty() && accept(c) {
			return c, true
		}
	}
	return coord.Coordinate{}, false
}

func anyCell(coord.Coordinate) bool { return true }

func (b *builder) area() int {
	return b.opts.Width * b.opts.Height
}

func (b *builder) placeRoguePlanets() {
	want := b.opts.RogueTier * b.area() / 1500
	for i := 0; i < want; i++ {
		c, ok := b.sampleEmpty(anyCell)
		if !ok {
			b.logger.Debug("Rogue planet placement stopped", "placed", i, "wanted", want)
			return
		}
		kind := planet.RandomType(b.rng)
		size := planet.RandomSize(b.rng)
		h := b.planets.Add(planet.Planet{
			Sun:           grid.NoSun,
			Name:          fmt.Sprintf("Rogue %d", i+1),
			Type:          kind,
			Position:      c,
			Size:          size,
			MaxPopulation: planet.MaxPopulationFor(kind, size),
			Owner:         planet.NoOwner,
		})
		b.grid.SetSquareInfo(c.X, c.Y, grid.NewSquareInfo(kind.SquareType(), int(h)))
	}
}

// placeDeepSpace drops deep-space anchors, turning a share of them into
// pirate lairs according to the pirate tier.
func (b *builder) placeDeepSpace() {
	want := max(b.opts.Players, b.area()/1200)
	lairs := want * b.opts.PirateTier / 6

	for i := 0; i < want; i++ {
		c, ok := b.sampleEmpty(anyCell)
		if !ok {
			b.logger.Debug("Deep space placement stopped", "placed", i, "wanted", want)
			return
		}
		if i < lairs {
			b.grid.SetSquareInfo(c.X, c.Y, grid.NewSquareInfo(grid.SquareLair, b.opts.PirateDifficulty))
			b.lairs = append(b.lairs, Lair{Position: c, Difficulty: b.opts.PirateDifficulty})
			continue
		}
		b.grid.SetSquareInfo(c.X, c.Y, grid.NewSquareInfo(grid.SquareDeepSpaceStart, i))
		b.anchors = append(b.anchors, c)
	}
}

func (b *builder) placeAnomalies() {
	tier := b.opts.AnomalyTier

	for i := 0; i < tier*2; i++ {
		c, ok := b.sampleEmpty(b.blackHoleFits)
		if !ok {
			break
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				b.grid.SetSquareInfo(c.X+dx, c.Y+dy, grid.NewSquareInfo(grid.SquareBlackHole, i))
			}
		}
		b.grid.SetSquareInfo(c.X, c.Y, grid.NewSquareInfo(grid.SquareBlackHoleCenter, i))
	}

	for i := 0; i < tier*3; i++ {
		if c, ok := b.sampleEmpty(anyCell); ok {
			b.grid.SetSquareInfo(c.X, c.Y, grid.NewSquareInfo(grid.SquareAscensionVein, i))
		}
		if c, ok := b.sampleEmpty(anyCell); ok {
			b.grid.SetSquareInfo(c.X, c.Y, grid.NewSquareInfo(grid.SquareAnomaly, i))
		}
	}
}

func (b *builder) blackHoleFits(c coord.Coordinate) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := c.X+dx, c.Y+dy
			if !b.grid.InBounds(x, y) || !b.grid.SquareInfo(x, y).IsEmpty() {
				return false
			}
		}
	}
	return true
}
