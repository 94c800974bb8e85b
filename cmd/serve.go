package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abcnoodle/marketintel/internal/dashboard"
	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/loadlog"
	"github.com/abcnoodle/marketintel/internal/server"
	"github.com/abcnoodle/marketintel/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Loads the datasets and serves the dashboard, its fragments and the JSON
API over HTTP. With --watch the datasets are reloaded when they change and
open browsers refresh automatically.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("watch", false, "reload when the dataset files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if w, _ := cmd.Flags().GetBool("watch"); w {
		cfg.Watch = true
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	return withHistory(func(store *loadlog.Store) error {
		holder := &dataset.Holder{}

		// A failed startup load is logged and the page shell is served
		// with 503 until a watched reload succeeds.
		if snap, _, err := loadSnapshot(ctx, loadlog.ReasonStartup, store); err == nil {
			holder.Store(snap)
		}

		renderer, err := dashboard.NewRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		hub := dashboard.NewHub(logger)
		defer hub.Close()

		srv := server.New(server.Config{
			Addr:     cfg.Addr(),
			AllowAll: cfg.AllowAllOrigins,
		}, holder, logger)

		dash := dashboard.New(holder, renderer, hub, logger, dashboard.Options{
			Title: cfg.Title,
			Live:  cfg.Watch,
		})
		dash.RegisterRoutes(srv.Router())
		if store != nil {
			loadlog.RegisterRoutes(srv.Router(), store)
		}

		if cfg.Watch {
			w, err := watchDatasets(holder, dash, store)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("server shutdown", zap.Error(err))
			}
		}()

		logger.Info("marketintel server starting",
			zap.String("version", Version),
			zap.String("addr", cfg.Addr()),
			zap.Bool("watch", cfg.Watch),
			zap.String("history", cfg.HistoryDB),
		)
		return srv.Start()
	})
}

// watchDatasets builds a watcher that reloads the holder and tells open
// pages to refresh. A failed reload keeps the previous snapshot.
func watchDatasets(holder *dataset.Holder, dash *dashboard.Dashboard, store *loadlog.Store) (*watch.Watcher, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}
	return watch.New(dir, cfg.WatchPatterns, func(ctx context.Context, paths []string) {
		logger.Info("datasets changed", zap.Strings("paths", paths))
		snap, _, err := loadSnapshot(ctx, loadlog.ReasonWatch, store)
		if err != nil {
			return
		}
		holder.Store(snap)
		dash.Reload()
	}, logger)
}
