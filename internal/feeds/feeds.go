// Package feeds retrieves RSS/Atom feeds and normalizes their entries
// into the canonical record consumed by the classification stage.
package feeds

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/upscprep/harvester/internal/dates"
	"github.com/upscprep/harvester/internal/logger"
	"github.com/upscprep/harvester/internal/metrics"
	"github.com/upscprep/harvester/internal/ratelimit"
	"github.com/upscprep/harvester/internal/retry"
)

const defaultSummaryMax = 450

// Record is a feed entry normalized to the canonical shape: trimmed title
// and link, tag-stripped truncated summary, and a YYYY-MM-DD date in IST.
type Record struct {
	FeedName string
	Title    string
	Link     string
	Summary  string
	Date     string
}

// Client fetches and normalizes feeds one at a time.
type Client struct {
	parser     *gofeed.Parser
	pacer      *ratelimit.Pacer
	retry      retry.Options
	summaryMax int
}

type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Retry      retry.Options
	Pacer      *ratelimit.Pacer
	SummaryMax int
}

func NewClient(opts Options) *Client {
	parser := gofeed.NewParser()
	if opts.Timeout > 0 {
		parser.Client = &http.Client{Timeout: opts.Timeout}
	}
	if opts.UserAgent != "" {
		parser.UserAgent = opts.UserAgent
	}

	summaryMax := opts.SummaryMax
	if summaryMax <= 0 {
		summaryMax = defaultSummaryMax
	}
	if opts.Retry.Attempts < 1 {
		opts.Retry.Attempts = 1
	}

	return &Client{
		parser:     parser,
		pacer:      opts.Pacer,
		retry:      opts.Retry,
		summaryMax: summaryMax,
	}
}

// FetchAll retrieves every source in order and returns the normalized
// records. A failing feed is logged with its name and contributes zero
// records; it never stops the run. The now argument is the single
// per-run timestamp used for date fallbacks.
func (c *Client) FetchAll(ctx context.Context, sources []Source, now time.Time) []Record {
	var records []Record
	succeeded := 0

	for _, src := range sources {
		if err := c.pacer.Wait(ctx); err != nil {
			logger.Warn("fetch cancelled", "feed", src.Name, "error", err)
			break
		}

		feed, err := c.fetch(ctx, src.URL)
		if err != nil {
			logger.Warn("feed failed", "feed", src.Name, "error", err)
			metrics.Global.IncrementFeedsFailed()
			continue
		}
		metrics.Global.IncrementFeedsFetched()
		metrics.Global.AddEntriesCollected(len(feed.Items))

		for _, item := range feed.Items {
			records = append(records, c.normalize(item, src.Name, now))
		}
		succeeded++
		logger.Debug("feed loaded", "feed", src.Name, "entries", len(feed.Items))
	}

	logger.Info("feeds processed", "ok", succeeded, "total", len(sources), "entries", len(records))
	return records
}

func (c *Client) fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	var feed *gofeed.Feed
	err := retry.Do(ctx, c.retry, func() error {
		f, err := c.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			return err
		}
		feed = f
		return nil
	})
	return feed, err
}

// normalize maps one feed entry to a Record. The summary prefers the
// entry's description, falling back to its content body; the date prefers
// the published timestamp, falling back to updated, then to now.
func (c *Client) normalize(item *gofeed.Item, feedName string, now time.Time) Record {
	summary := strings.TrimSpace(item.Description)
	if summary == "" {
		summary = strings.TrimSpace(item.Content)
	}
	summary = truncateRunes(StripTags(summary), c.summaryMax)

	ts := item.PublishedParsed
	if ts == nil {
		ts = item.UpdatedParsed
	}
	date := dates.YMD(now)
	if ts != nil {
		date = dates.YMD(*ts)
	}

	return Record{
		FeedName: feedName,
		Title:    strings.TrimSpace(item.Title),
		Link:     strings.TrimSpace(item.Link),
		Summary:  summary,
		Date:     date,
	}
}

// truncateRunes hard-cuts s to at most max runes, no ellipsis.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
