// Package ratelimit paces outbound feed fetches so sequential harvests
// stay polite to source servers.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between successive calls to Wait.
// The harvest loop is sequential, so a single timestamp suffices; the
// mutex keeps the pacer safe if more than one goroutine ever fetches.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewPacer returns a pacer with the given minimum interval. A zero or
// negative interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until the pacer's interval has elapsed since the previous
// call, or until ctx is cancelled. The first call never blocks.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return nil
	}

	p.mu.Lock()
	now := time.Now()
	var wait time.Duration
	if now.Before(p.next) {
		wait = p.next.Sub(now)
	}
	p.next = now.Add(wait + p.interval)
	p.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
