package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"

	"galaxy-kernel/internal/shared/errors"
)

const slotsObject = "saves"

// SlotStore keeps save streams in the per-user application data directory.
type SlotStore struct {
	manager *gdata.Manager
}

// OpenSlotStore opens the local data directory for appName.
func OpenSlotStore(appName string) (*SlotStore, error) {
	logger := slog.With("component", "snapshot_slots", "operation", "open", "app", appName)

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Error("Failed to open local save storage", "error", err)
		return nil, fmt.Errorf("failed to open local save storage: %w", err)
	}

	logger.Debug("Local save storage ready")
	return &SlotStore{manager: manager}, nil
}

func (s *SlotStore) Name() string { return "slots" }

func (s *SlotStore) Save(_ context.Context, name string, turn int, data []byte) error {
	logger := slog.With("component", "snapshot_slots", "operation", "save", "name", name, "turn", turn)

	if err := s.manager.SaveObjectProp(slotsObject, name, data); err != nil {
		logger.Error("Failed to write save slot", "error", err)
		return fmt.Errorf("failed to write save slot: %w", err)
	}

	logger.Debug("Save slot written", "size_bytes", len(data))
	return nil
}

func (s *SlotStore) Load(_ context.Context, name string) ([]byte, error) {
	logger := slog.With("component", "snapshot_slots", "operation", "load", "name", name)

	if !s.manager.ObjectPropExists(slotsObject, name) {
		logger.Debug("Save slot is empty")
		return nil, errors.NotFoundf("save slot %q is empty", name)
	}

	data, err := s.manager.LoadObjectProp(slotsObject, name)
	if err != nil {
		logger.Error("Failed to read save slot", "error", err)
		return nil, fmt.Errorf("failed to read save slot: %w", err)
	}
	return data, nil
}
