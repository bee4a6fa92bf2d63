// Package snapshot persists encoded save streams across a redis cache, a
// postgres table and local save slots.
package snapshot

import (
	"context"
	"log/slog"
	"regexp"

	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/savegame"
	"galaxy-kernel/internal/shared/errors"
)

// Store is one place a save stream can live. Load returns a not_found error
// when the store has nothing under name.
type Store interface {
	Name() string
	Save(ctx context.Context, name string, turn int, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

var validName = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

type Service struct {
	stores  []Store
	catalog grid.TileCatalog
	logger  *slog.Logger
}

// NewService builds a service over stores, listed fastest first. Load tries
// them in that order.
func NewService(catalog grid.TileCatalog, logger *slog.Logger, stores ...Store) *Service {
	logger.Debug("Initializing snapshot service", "stores", len(stores))

	return &Service{
		stores:  stores,
		catalog: catalog,
		logger:  logger,
	}
}

// Save encodes state and writes it to every store. Every store is tried
// even after a failure; the first failure is returned.
func (s *Service) Save(ctx context.Context, name string, state *savegame.State) error {
	logger := s.logger.With("component", "snapshot_service", "operation", "save", "name", name, "turn", state.Turn)

	if !validName.MatchString(name) {
		return errors.Validationf("invalid save name %q", name)
	}
	if len(s.stores) == 0 {
		return errors.Validation("no snapshot store configured")
	}

	data, err := savegame.Marshal(state)
	if err != nil {
		logger.Error("Failed to encode save stream", "error", err)
		return err
	}

	var first error
	for _, store := range s.stores {
		if err := store.Save(ctx, name, state.Turn, data); err != nil {
			logger.Warn("Store rejected snapshot", "store", store.Name(), "error", err)
			if first == nil {
				first = errors.WrapExternal("failed to save to "+store.Name(), err)
			}
		}
	}
	if first != nil {
		return first
	}

	logger.Info("Snapshot saved", "stores", len(s.stores), "size_bytes", len(data))
	return nil
}

// Load returns the first stream found, decoded. The culture grid of the
// result is empty; callers run savegame.Restore before simulating.
// Format errors are final and are not retried against slower stores.
func (s *Service) Load(ctx context.Context, name string) (*savegame.State, error) {
	logger := s.logger.With("component", "snapshot_service", "operation", "load", "name", name)

	if !validName.MatchString(name) {
		return nil, errors.Validationf("invalid save name %q", name)
	}

	for _, store := range s.stores {
		data, err := store.Load(ctx, name)
		if err != nil {
			if !errors.IsNotFound(err) {
				logger.Warn("Store failed, trying next", "store", store.Name(), "error", err)
			}
			continue
		}

		state, err := savegame.Unmarshal(data, s.catalog)
		if err != nil {
			logger.Error("Stored snapshot is unreadable", "store", store.Name(), "error", err)
			return nil, err
		}

		logger.Info("Snapshot loaded", "store", store.Name(), "turn", state.Turn)
		return state, nil
	}

	logger.Info("Snapshot not found in any store")
	return nil, errors.NotFoundf("snapshot %q not found", name)
}
