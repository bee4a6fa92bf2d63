package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const migrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT NOW()
	)`

// RunMigrations applies every .sql file directly under dir that is not yet
// recorded in schema_migrations, in file name order. Each file runs in its
// own transaction together with its bookkeeping row.
func (db *DB) RunMigrations(ctx context.Context, dir string) error {
	logger := slog.With("component", "migrations", "operation", "run", "dir", dir)

	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		logger.Error("Failed to create schema_migrations", "error", err)
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	files, err := migrationFiles(dir)
	if err != nil {
		logger.Error("Failed to list migrations", "error", err)
		return err
	}

	applied := 0
	for _, file := range files {
		ran, err := db.apply(ctx, dir, file)
		if err != nil {
			logger.Error("Migration failed", "migration", file, "error", err)
			return fmt.Errorf("failed to run migration %s: %w", file, err)
		}
		if ran {
			applied++
		}
	}

	logger.Info("Migrations up to date", "found", len(files), "applied", applied)
	return nil
}

// migrationFiles lists the .sql file names in dir, sorted.
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func (db *DB) apply(ctx context.Context, dir, file string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", file).Scan(&exists)
	if err != nil || exists {
		return false, err
	}

	content, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Warn("Failed to roll back migration", "migration", file, "error", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", file); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}

	slog.Info("Migration applied", "component", "migrations", "migration", file, "size_bytes", len(content))
	return true, nil
}
