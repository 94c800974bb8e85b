package loadlog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// Load loads src, validates the snapshot and records the attempt in store.
// store may be nil. Validation issues are returned alongside the snapshot
// and never fail the load on their own.
func Load(ctx context.Context, loader *dataset.Loader, src dataset.Sources, reason Reason, store *Store, logger *zap.Logger) (*dataset.Snapshot, []dataset.Issue, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	snap, err := loader.Load(ctx, src)
	took := time.Since(start)
	if err != nil {
		logger.Error("loading datasets failed",
			zap.String("reason", string(reason)),
			zap.String("insights", src.Insights),
			zap.String("dashboard", src.Dashboard),
			zap.Error(err),
		)
		record(ctx, store, Failed(reason, src, err, took), logger)
		return nil, nil, err
	}

	issues := dataset.Validate(snap)
	for _, issue := range issues {
		logger.Warn("dataset issue",
			zap.String("severity", string(issue.Severity)),
			zap.String("path", issue.Path),
			zap.String("message", issue.Message),
		)
	}

	logger.Info("datasets loaded",
		zap.String("reason", string(reason)),
		zap.Strings("countries", snap.DataCountries()),
		zap.Int("issues", len(issues)),
		zap.Duration("took", took),
	)
	record(ctx, store, Succeeded(reason, snap, issues, took), logger)
	return snap, issues, nil
}

func record(ctx context.Context, store *Store, entry Entry, logger *zap.Logger) {
	if store == nil {
		return
	}
	if _, err := store.Record(ctx, entry); err != nil {
		logger.Warn("recording load history failed", zap.Error(err))
	}
}
