package retry

import (
	"context"
	"fmt"
	"time"
)

type Options struct {
	Attempts int
	Delay    time.Duration
	Backoff  bool // linear backoff on the delay
}

// Do runs fn up to Attempts times, waiting Delay between attempts. With a
// single attempt it degrades to a plain call, which is the pipeline default.
func Do(ctx context.Context, opts Options, fn func() error) error {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if attempt == opts.Attempts {
				if opts.Attempts == 1 {
					return err
				}
				return fmt.Errorf("failed after %d attempts: %w", opts.Attempts, err)
			}

			delay := opts.Delay
			if opts.Backoff {
				delay = time.Duration(attempt) * opts.Delay
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				continue
			}
		}
		return nil
	}

	return lastErr
}
