// Package app wires the harvest pipeline: sources → fetch → filter →
// classify/enrich → dedup → sort → write.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/upscprep/harvester/internal/config"
	"github.com/upscprep/harvester/internal/digest"
	"github.com/upscprep/harvester/internal/feeds"
	"github.com/upscprep/harvester/internal/logger"
	"github.com/upscprep/harvester/internal/metrics"
	"github.com/upscprep/harvester/internal/ratelimit"
	"github.com/upscprep/harvester/internal/retry"
	"github.com/upscprep/harvester/internal/storage"
)

// Run executes one harvest. Per-feed failures are logged and skipped;
// only setup and the final write can return an error.
func Run(ctx context.Context, cfg *config.Config) error {
	// Single per-run snapshot: date fallbacks and the recency window
	// must agree even across a midnight boundary.
	now := time.Now()

	sources, err := loadSources(cfg)
	if err != nil {
		return err
	}

	client := feeds.NewClient(feeds.Options{
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
		Retry: retry.Options{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay,
			Backoff:  true,
		},
		Pacer:      ratelimit.NewPacer(cfg.FetchInterval),
		SummaryMax: cfg.SummaryMaxRunes,
	})

	records := client.FetchAll(ctx, sources, now)
	records = digest.FilterRecent(records, now, cfg.RecencyDays)

	items := digest.Build(records)
	items = digest.Dedup(items)
	digest.Sort(items)

	if err := storage.WriteItems(cfg.OutputPath, items); err != nil {
		return err
	}

	metrics.Global.SetItemsWritten(len(items))
	metrics.Global.RecordRunDuration(time.Since(now))
	metrics.Global.SetLastRun()

	logger.Info("wrote items", "count", len(items), "path", cfg.OutputPath)
	logger.Debug("run stats", "stats", metrics.Global.GetStats())
	return nil
}

// loadSources resolves the feed list: the YAML file when present, the
// built-in defaults when it is absent. An unreadable or invalid file is a
// setup failure and aborts the run.
func loadSources(cfg *config.Config) ([]feeds.Source, error) {
	if cfg.FeedsConfigPath == "" {
		return feeds.DefaultSources(), nil
	}

	sources, err := feeds.LoadSources(cfg.FeedsConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("feeds config not found, using defaults", "path", cfg.FeedsConfigPath)
			return feeds.DefaultSources(), nil
		}
		return nil, fmt.Errorf("failed to load feed sources: %w", err)
	}
	return sources, nil
}
