// Package turn drives the per-turn simulation phases over an empire state.
package turn

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/time/rate"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/culture"
	"galaxy-kernel/internal/empire"
	"galaxy-kernel/internal/route"
	"galaxy-kernel/internal/visibility"
)

// lairAlertRange is how close a lair must be before an idle fleet retreats.
const lairAlertRange = 3

// Report summarizes one Step.
type Report struct {
	Turn       int
	Retargeted int
	Moved      int
	Blocked    int
	Visible    []int
}

type Runner struct {
	state   *empire.State
	lairs   []coord.Coordinate
	engine  *culture.Engine
	limiter *rate.Limiter
	rng     *rand.Rand
	logger  *slog.Logger
	turn    int
}

// NewRunner builds a runner starting at turn. A nil limiter runs turns
// back to back.
func NewRunner(state *empire.State, lairs []coord.Coordinate, turn int, limiter *rate.Limiter, rng *rand.Rand, logger *slog.Logger) *Runner {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	logger.Debug("Initializing turn runner", "players", len(state.Players), "turn", turn)

	return &Runner{
		state:   state,
		lairs:   lairs,
		engine:  culture.NewEngine(state.Grid),
		limiter: limiter,
		rng:     rng,
		logger:  logger,
		turn:    turn,
	}
}

// NewLimiter paces turns at turnsPerSecond; zero or less means unpaced.
func NewLimiter(turnsPerSecond float64, burst int) *rate.Limiter {
	if turnsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(turnsPerSecond), max(burst, 1))
}

func (r *Runner) Turn() int { return r.turn }

// Run steps turns times, waiting on the limiter before each turn. It stops
// early when ctx is done.
func (r *Runner) Run(ctx context.Context, turns int) ([]Report, error) {
	logger := r.logger.With("component", "turn_runner", "operation", "run", "turns", turns)
	logger.Info("Running turns", "from_turn", r.turn)

	reports := make([]Report, 0, turns)
	for range turns {
		if err := r.limiter.Wait(ctx); err != nil {
			logger.Warn("Turn loop interrupted", "turn", r.turn, "error", err)
			return reports, fmt.Errorf("turn loop interrupted at turn %d: %w", r.turn, err)
		}
		reports = append(reports, r.Step())
	}

	logger.Info("Turns complete", "turn", r.turn)
	return reports, nil
}

// Step runs one turn: orders, movement, visibility, culture.
func (r *Runner) Step() Report {
	rep := Report{Turn: r.turn}
	g := r.state.Grid

	rep.Retargeted = r.issueOrders()
	rep.Moved, rep.Blocked = r.moveFleets()
	g.InvalidateFleets()
	rep.Visible = r.refreshVisibility()
	r.engine.Rebuild(r.state.CultureSources())

	r.logger.Debug("Turn resolved",
		"component", "turn_runner",
		"turn", r.turn,
		"retargeted", rep.Retargeted,
		"moved", rep.Moved,
		"blocked", rep.Blocked)

	r.turn++
	return rep
}

// issueOrders gives every idle fleet a destination: away from a nearby
// lair, else towards the nearest uncharted sun, else a random free sector.
func (r *Runner) issueOrders() int {
	g := r.state.Grid
	issued := 0

	for _, p := range r.state.Players {
		explorer := r.state.Explorer(p)
		for _, f := range p.Fleets {
			if !f.Idle() || f.Route.Mode != route.ModeTravel || f.Route.Speed() == 0 {
				continue
			}
			pos := f.Position()

			if lair, ok := r.nearestLair(pos); ok && r.retarget(f, g.EscapeCoordinate(pos, lair)) {
				issued++
				continue
			}

			here, _ := g.SquareInfo(pos.X, pos.Y).SunHandle()
			if h, ok := g.NearestUnchartedSun(pos, explorer, here, true, r.rng); ok {
				if sun, ok := g.Sun(h); ok && r.retarget(f, sun.Center) {
					issued++
					continue
				}
			}
			if spot, ok := g.FreeRandomSpot(r.rng); ok && r.retarget(f, spot) {
				issued++
			}
		}
	}
	return issued
}

// retarget points f at dest when the straight path is clear.
func (r *Runner) retarget(f *empire.Fleet, dest coord.Coordinate) bool {
	pos := f.Position()
	if dest == pos || !r.state.Grid.InBounds(dest.X, dest.Y) {
		return false
	}
	next := route.New(pos, dest, f.Route.FTLSpeed, f.Route.RegularSpeed)
	if _, blocked := next.FirstObstruction(r.state.Grid); blocked {
		return false
	}
	f.Route = next
	return true
}

func (r *Runner) nearestLair(pos coord.Coordinate) (coord.Coordinate, bool) {
	best, found := coord.Coordinate{}, false
	for _, l := range r.lairs {
		if pos.ChebyshevDistance(l) > lairAlertRange || l == pos {
			continue
		}
		if !found || pos.Distance(l) < pos.Distance(best) {
			best, found = l, true
		}
	}
	return best, found
}

// moveFleets advances fleets in player order, then list order.
func (r *Runner) moveFleets() (moved, blocked int) {
	g := r.state.Grid
	for _, p := range r.state.Players {
		for _, f := range p.Fleets {
			if f.Idle() {
				continue
			}
			if f.Route.Advance(g, f.Route.Speed()) {
				moved++
				continue
			}
			blocked++
			f.Route = route.New(f.Position(), f.Position(), f.Route.FTLSpeed, f.Route.RegularSpeed)
		}
	}
	return moved, blocked
}

// refreshVisibility recomputes each player's fog of war from scratch and
// returns the visible sector count per player.
func (r *Runner) refreshVisibility() []int {
	g := r.state.Grid
	visible := make([]int, len(r.state.Players))
	for i, p := range r.state.Players {
		p.Visibility.Clear()
		for _, sc := range r.state.Scanners(p) {
			visibility.Propagate(g, p.Visibility, sc.Center, sc.Radius, sc.Detection)
		}
		visible[i] = p.Visibility.VisibleCount()
	}
	return visible
}
