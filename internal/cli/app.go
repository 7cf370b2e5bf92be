package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/larder/internal/config"
	"github.com/roach88/larder/internal/pantry"
	"github.com/roach88/larder/internal/store"
)

// App wires the configured collaborators into a loaded inventory store.
type App struct {
	Config config.Config
	Pantry *pantry.Store
	Clock  pantry.Clock

	db *store.Store
}

// openApp loads config, opens the snapshot database, and loads the
// inventory store. A persistence failure during load is a warning, not
// a fatal error: the affected collections start empty and the session
// proceeds (a later successful save restores durability).
//
// The returned cleanup function closes the database.
func openApp(ctx context.Context, opts *RootOptions) (*App, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.DatabasePath = opts.Database
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
		}
	}

	slog.Debug("opening database", "path", cfg.DatabasePath)
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = pantry.SystemClock{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = pantry.UUIDv7Generator{}
	}

	p := pantry.NewStore(db, clock, ids)
	if err := p.Load(ctx); err != nil {
		// Recoverable: collections that failed to load start empty.
		slog.Warn("some snapshots failed to load", "error", err)
	}

	app := &App{Config: cfg, Pantry: p, Clock: clock, db: db}
	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}
	return app, cleanup, nil
}
