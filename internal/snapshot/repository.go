package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"galaxy-kernel/internal/shared/database"
	"galaxy-kernel/internal/shared/errors"
)

// Repository keeps encoded save streams in the galaxy_snapshots table.
type Repository struct {
	db database.Executor
}

func NewRepository(db database.Executor) *Repository {
	logger := slog.With("component", "snapshot_repository", "operation", "init")
	logger.Debug("Initializing snapshot repository")
	return &Repository{db: db}
}

func (r *Repository) Name() string { return "postgres" }

func (r *Repository) Save(ctx context.Context, name string, turn int, data []byte) error {
	logger := slog.With(
		"component", "snapshot_repository",
		"operation", "save",
		"name", name,
		"turn", turn,
		"size_bytes", len(data),
	)
	logger.Debug("Saving snapshot")

	query := `
		INSERT INTO galaxy_snapshots (name, turn, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET turn = EXCLUDED.turn, data = EXCLUDED.data, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, name, turn, data); err != nil {
		logger.Error("Failed to save snapshot", "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	logger.Info("Snapshot saved")
	return nil
}

func (r *Repository) Load(ctx context.Context, name string) ([]byte, error) {
	logger := slog.With("component", "snapshot_repository", "operation", "load", "name", name)
	logger.Debug("Loading snapshot")

	query := `
		SELECT data
		FROM galaxy_snapshots
		WHERE name = $1
	`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("Snapshot not found")
			return nil, errors.NotFoundf("snapshot %q not found", name)
		}
		logger.Error("Database error loading snapshot", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	logger.Debug("Snapshot loaded", "size_bytes", len(data))
	return data, nil
}
