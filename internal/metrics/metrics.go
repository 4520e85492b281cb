package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched      int64
	FeedsFailed       int64
	EntriesCollected  int64
	StaleDropped      int64
	DuplicatesDropped int64
	ItemsWritten      int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFeedsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) IncrementFeedsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFailed++
}

func (m *Metrics) AddEntriesCollected(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesCollected += int64(n)
}

func (m *Metrics) IncrementStaleDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StaleDropped++
}

func (m *Metrics) IncrementDuplicatesDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesDropped++
}

func (m *Metrics) SetItemsWritten(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsWritten = int64(n)
}

func (m *Metrics) RecordRunDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = d
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":      m.FeedsFetched,
		"feeds_failed":       m.FeedsFailed,
		"entries_collected":  m.EntriesCollected,
		"stale_dropped":      m.StaleDropped,
		"duplicates_dropped": m.DuplicatesDropped,
		"items_written":      m.ItemsWritten,
		"last_run_ms":        m.LastRunDuration.Milliseconds(),
		"last_run_time":      m.LastRunTime.Format(time.RFC3339),
		"last_error_time":    m.LastErrorTime.Format(time.RFC3339),
		"last_error":         m.LastError,
		"is_healthy":         m.IsHealthy,
	}
}
