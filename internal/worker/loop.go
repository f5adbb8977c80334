// Package worker runs the periodic background jobs: the optimization sweep
// and the market intelligence refresh.
package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/quotable/leadintel/internal/pkg/distlock"
)

// Every runs fn under lock once immediately and then on every tick until
// ctx is done. A tick that finds the lock held elsewhere is skipped.
func Every(ctx context.Context, name string, interval time.Duration, lock distlock.DistLock, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		runGuarded(ctx, name, lock, fn)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func runGuarded(ctx context.Context, name string, lock distlock.DistLock, fn func(context.Context) error) {
	start := time.Now()
	err := distlock.Run(ctx, lock, fn)
	switch {
	case err == nil:
		jobRunsTotal.WithLabelValues(name, "ok").Inc()
		log.Printf("[worker.%s] completed in %s", name, time.Since(start).Round(time.Millisecond))
	case errors.Is(err, distlock.ErrNotAcquired):
		jobRunsTotal.WithLabelValues(name, "skipped").Inc()
		log.Printf("[worker.%s] skipped: lock held by another process", name)
	case ctx.Err() != nil:
		// Shutting down.
	default:
		jobRunsTotal.WithLabelValues(name, "error").Inc()
		log.Printf("[worker.%s] run failed: %v", name, err)
	}
}
