package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galaxy-kernel/internal/catalog"
	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/empire"
	"galaxy-kernel/internal/galaxy"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/savegame"
	"galaxy-kernel/internal/shared/config"
	"galaxy-kernel/internal/shared/database"
	"galaxy-kernel/internal/shared/errors"
	"galaxy-kernel/internal/shared/logger"
	"galaxy-kernel/internal/shared/redis"
	"galaxy-kernel/internal/snapshot"
	"galaxy-kernel/internal/turn"
)

// session is the state the driver carries between loading and saving.
type session struct {
	state            *empire.State
	lairs            []coord.Coordinate
	turn             int
	victory          [savegame.VictoryThresholds]int
	pirateDifficulty int
	seed             int64
}

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	cfg := config.GlobalConfig

	log := slog.With("component", "main")
	log.Info("Starting galaxy kernel",
		"environment", cfg.Server.Environment,
		"players", cfg.Galaxy.Players,
		"layout", cfg.Galaxy.Layout,
		"turns", cfg.Simulation.Turns)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Galaxy kernel stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("Galaxy kernel finished")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	var tiles grid.TileCatalog
	if cfg.Simulation.CatalogPath != "" {
		c, err := catalog.LoadFile(cfg.Simulation.CatalogPath)
		if err != nil {
			return err
		}
		log.Info("Tile catalog loaded", "path", cfg.Simulation.CatalogPath, "tiles", c.Len())
		tiles = c
	}

	stores, cleanup, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	snapshots := snapshot.NewService(tiles, slog.Default(), stores...)

	sess, err := startSession(ctx, cfg, tiles, snapshots, log)
	if err != nil {
		return err
	}

	runner := turn.NewRunner(sess.state, sess.lairs, sess.turn,
		turn.NewLimiter(cfg.Simulation.TurnsPerSecond, cfg.Simulation.BurstSize),
		rand.New(rand.NewSource(sess.seed)), slog.Default())

	reports, runErr := runner.Run(ctx, cfg.Simulation.Turns)
	if len(reports) > 0 {
		last := reports[len(reports)-1]
		log.Info("Last turn", "turn", last.Turn, "moved", last.Moved, "blocked", last.Blocked, "visible", last.Visible)
	}
	if runErr != nil {
		log.Warn("Simulation interrupted, saving progress", "turn", runner.Turn(), "error", runErr)
	}

	if len(stores) == 0 {
		log.Warn("No snapshot store available, progress not saved", "turn", runner.Turn())
		return nil
	}

	// A cancelled ctx must not abort the final save.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	state := sess.state.Snapshot(runner.Turn(), sess.victory, sess.pirateDifficulty)
	if err := snapshots.Save(saveCtx, cfg.Simulation.SaveName, state); err != nil {
		return err
	}
	return nil
}

// openStores connects every enabled snapshot store, fastest first. The
// returned cleanup closes whatever was opened.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) ([]snapshot.Store, func(), error) {
	var stores []snapshot.Store
	var closers []func() error
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("Failed to close store", "error", err)
			}
		}
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, cleanup, err
	}
	if client != nil {
		closers = append(closers, client.Close)
		stores = append(stores, snapshot.NewCache(client.Client, cfg.Redis.SnapshotTTL))
	}

	if cfg.Database.Enabled {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, db.Close)
		if err := db.RunMigrations(ctx, cfg.Database.MigrationsPath); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		stores = append(stores, snapshot.NewRepository(db))
	}

	slots, err := snapshot.OpenSlotStore(cfg.Simulation.AppName)
	if err != nil {
		log.Warn("Local save slots unavailable", "error", err)
	} else {
		stores = append(stores, slots)
	}

	log.Info("Snapshot stores ready", "count", len(stores))
	return stores, cleanup, nil
}

// startSession resumes the configured save when asked to and one exists,
// otherwise generates a fresh galaxy.
func startSession(ctx context.Context, cfg *config.Config, tiles grid.TileCatalog, snapshots *snapshot.Service, log *slog.Logger) (*session, error) {
	if cfg.Simulation.Resume {
		saved, err := snapshots.Load(ctx, cfg.Simulation.SaveName)
		switch {
		case err == nil:
			state, err := empire.FromSnapshot(saved)
			if err != nil {
				return nil, err
			}
			log.Info("Resumed saved galaxy", "name", cfg.Simulation.SaveName, "turn", saved.Turn)
			return &session{
				state:            state,
				lairs:            lairPositions(galaxy.ScanLairs(saved.Grid)),
				turn:             saved.Turn,
				victory:          saved.VictoryThresholds,
				pirateDifficulty: saved.PirateDifficulty,
				seed:             time.Now().UnixNano(),
			}, nil
		case errors.IsNotFound(err):
			log.Info("No save to resume, generating", "name", cfg.Simulation.SaveName)
		default:
			return nil, err
		}
	}

	g, err := galaxy.NewService(tiles, slog.Default()).Generate(galaxyOptions(cfg.Galaxy))
	if err != nil {
		return nil, err
	}

	return &session{
		state:            empire.New(g, nil),
		lairs:            lairPositions(g.Lairs),
		victory:          empire.VictoryThresholds(g.Planets.Len()),
		pirateDifficulty: g.Options.PirateDifficulty,
		seed:             g.Options.Seed,
	}, nil
}

func galaxyOptions(c config.GalaxyConfig) galaxy.Options {
	return galaxy.Options{
		Width:                c.Width,
		Height:               c.Height,
		Players:              c.Players,
		SystemSpacing:        c.SystemSpacing,
		Layout:               galaxy.Layout(c.Layout),
		RogueTier:            c.RogueTier,
		PlanetaryEventChance: c.PlanetaryEventChance,
		PirateTier:           c.PirateTier,
		PirateDifficulty:     c.PirateDifficulty,
		AnomalyTier:          c.AnomalyTier,
		KarmaType:            c.KarmaType,
		KarmaSpeed:           c.KarmaSpeed,
		ElderHeadStart:       c.ElderHeadStart,
		ElderCount:           c.ElderCount,
		Seed:                 c.Seed,
	}
}

func lairPositions(lairs []galaxy.Lair) []coord.Coordinate {
	out := make([]coord.Coordinate, len(lairs))
	for i, l := range lairs {
		out[i] = l.Position
	}
	return out
}
