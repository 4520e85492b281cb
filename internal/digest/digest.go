// Package digest turns normalized feed records into the ordered,
// deduplicated item list written to items.json.
package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"time"

	"github.com/upscprep/harvester/internal/classify"
	"github.com/upscprep/harvester/internal/dates"
	"github.com/upscprep/harvester/internal/enrich"
	"github.com/upscprep/harvester/internal/feeds"
	"github.com/upscprep/harvester/internal/metrics"
)

// Item is one output record. Tags is reserved for future use and always
// serializes as an empty list, never null.
type Item struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Source   string   `json:"source"`
	Link     string   `json:"link"`
	Summary  string   `json:"summary"`
	Prelims  []string `json:"prelims"`
	Why      string   `json:"why"`
	Tags     []string `json:"tags"`
}

// NewID derives the content-addressed display id: the first 12 hex
// characters of SHA-1 over title, a pipe, and link. Identical
// (title, link) pairs always get identical ids across runs.
func NewID(title, link string) string {
	sum := sha1.Sum([]byte(title + "|" + link))
	return hex.EncodeToString(sum[:])[:12]
}

// FilterRecent drops records dated more than windowDays calendar days
// before today. Unparseable dates are kept (fail-open).
func FilterRecent(records []feeds.Record, today time.Time, windowDays int) []feeds.Record {
	kept := make([]feeds.Record, 0, len(records))
	for _, r := range records {
		if dates.WithinDays(r.Date, today, windowDays) {
			kept = append(kept, r)
		} else {
			metrics.Global.IncrementStaleDropped()
		}
	}
	return kept
}

// Build classifies and enriches records into output items, preserving
// input order.
func Build(records []feeds.Record) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		category := classify.Classify(r.Title, r.Summary, r.FeedName)
		items = append(items, Item{
			ID:       NewID(r.Title, r.Link),
			Date:     r.Date,
			Category: category,
			Title:    r.Title,
			Source:   r.FeedName,
			Link:     r.Link,
			Summary:  r.Summary,
			Prelims:  enrich.PrelimsFacts(r.FeedName, r.Link, r.Date),
			Why:      enrich.Why(category),
			Tags:     []string{},
		})
	}
	return items
}

// Dedup keeps the first occurrence of each (title, link) pair in input
// order and drops later duplicates.
func Dedup(items []Item) []Item {
	type pair struct{ title, link string }
	seen := make(map[pair]struct{}, len(items))
	out := make([]Item, 0, len(items))

	for _, it := range items {
		key := pair{it.Title, it.Link}
		if _, dup := seen[key]; dup {
			metrics.Global.IncrementDuplicatesDropped()
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Sort orders items newest first; within one date, categories and titles
// in reverse alphabetical order. The sort is stable, so equal keys keep
// their relative input order.
func Sort(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Category != b.Category {
			return a.Category > b.Category
		}
		return a.Title > b.Title
	})
}
