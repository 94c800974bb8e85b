package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abcnoodle/marketintel/internal/config"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/db"
	"github.com/abcnoodle/marketintel/internal/loadlog"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `marketintel init` to create a config file", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return c, nil
}

// openHistory opens the load history database. An empty history_db
// disables recording and returns a nil store.
func openHistory() (*db.DB, *loadlog.Store, error) {
	if cfg.HistoryDB == "" {
		return nil, nil, nil
	}
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return database, loadlog.NewStore(database), nil
}

// loadSnapshot loads and validates the configured datasets, recording the
// attempt when store is non-nil.
func loadSnapshot(ctx context.Context, reason loadlog.Reason, store *loadlog.Store) (*dataset.Snapshot, []dataset.Issue, error) {
	return loadlog.Load(ctx, dataset.NewLoader(), cfg.Sources(), reason, store, logger)
}

// withHistory runs fn with the history store open, closing it afterwards.
func withHistory(fn func(store *loadlog.Store) error) error {
	database, store, err := openHistory()
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}
	return fn(store)
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}
