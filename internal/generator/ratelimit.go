package generator

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter enforces a requests-per-window budget using a sliding window of
// recent call timestamps. It is owned by the caller and handed to each
// pipeline, so independent pipelines can run under independent budgets.
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	timestamps  []time.Time

	// Injectable for deterministic tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewLimiter(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Wait blocks until another request fits the budget, then records it.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := l.now()

		// Drop timestamps that have left the window.
		kept := l.timestamps[:0]
		for _, ts := range l.timestamps {
			if now.Sub(ts) < l.window {
				kept = append(kept, ts)
			}
		}
		l.timestamps = kept

		if l.maxRequests <= 0 || len(l.timestamps) < l.maxRequests {
			l.timestamps = append(l.timestamps, now)
			l.mu.Unlock()
			return nil
		}

		wait := l.window - now.Sub(l.timestamps[0])
		l.mu.Unlock()

		slog.Default().Info("request budget exhausted, waiting",
			"wait", wait,
			"maxRequests", l.maxRequests,
			"window", l.window,
		)
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}
