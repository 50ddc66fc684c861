package cli

import (
	"context"
	"fmt"

	"github.com/plaisio/plaisio/internal/board"
	"github.com/plaisio/plaisio/internal/config"
	"github.com/plaisio/plaisio/internal/history"
	"github.com/plaisio/plaisio/internal/storage"
)

// CLI represents the CLI application context: the board, its undo history,
// and the database both are persisted in. Every command builds one, mutates
// through it, and persists before exiting.
type CLI struct {
	Board   *board.Store
	History *history.Manager
	Config  *config.Config

	store *storage.Store
	ctx   context.Context
}

// NewCLI initializes the CLI: loads config, opens the database, and restores
// the board and undo history from the previous invocation.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = storage.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	hist := history.NewManager(cfg.HistoryLimit)
	b := board.New(
		board.WithHistory(hist),
		board.WithColumnTitles(cfg.ColumnTitles),
	)

	snap, found, err := store.Load(ctx)
	if err != nil {
		closeQuietly(store)
		return nil, err
	}
	if found {
		b.Restore(snap)
	}

	histState, found, err := store.LoadHistory(ctx)
	if err != nil {
		closeQuietly(store)
		return nil, err
	}
	if found {
		hist.Restore(histState)
	} else {
		// First run against this database: seed the history head with the
		// loaded board so the next mutation is undoable.
		hist.SaveState(b.Snapshot())
	}

	return &CLI{
		Board:   b,
		History: hist,
		Config:  cfg,
		store:   store,
		ctx:     ctx,
	}, nil
}

// Persist writes the current board and undo history to the database.
func (c *CLI) Persist() error {
	if err := c.store.Save(c.ctx, c.Board.Snapshot()); err != nil {
		return err
	}
	return c.store.SaveHistory(c.ctx, c.History.Export())
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.store.Close()
}

func closeQuietly(store *storage.Store) {
	_ = store.Close()
}
