package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/quotable/leadintel/internal/intelligence"
	"github.com/quotable/leadintel/internal/pkg/distlock"
)

// DefaultIntelligenceInterval is how often the market report is rebuilt.
const DefaultIntelligenceInterval = 24 * time.Hour

// ReportGenerator produces a fresh market intelligence snapshot.
type ReportGenerator interface {
	Generate(ctx context.Context) (*intelligence.Snapshot, error)
}

// IntelligenceRefresher regenerates the market intelligence report on an
// interval so the API can serve the archived copy.
type IntelligenceRefresher struct {
	gen      ReportGenerator
	lock     distlock.DistLock
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIntelligenceRefresher creates a refresher. A nil lock falls back to a
// process-local one.
func NewIntelligenceRefresher(gen ReportGenerator, lock distlock.DistLock, interval time.Duration) *IntelligenceRefresher {
	if interval <= 0 {
		interval = DefaultIntelligenceInterval
	}
	if lock == nil {
		lock = distlock.NewLocalLock("leadintel:intelligence")
	}
	return &IntelligenceRefresher{gen: gen, lock: lock, interval: interval}
}

// Start begins refreshing in the background.
func (r *IntelligenceRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	log.Printf("[worker.IntelligenceRefresher] starting with interval=%s", r.interval)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		Every(ctx, "IntelligenceRefresher", r.interval, r.lock, func(ctx context.Context) error {
			_, err := r.gen.Generate(ctx)
			return err
		})
	}()
}

// Stop cancels the loop and waits for it to exit.
func (r *IntelligenceRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	r.wg.Wait()
	log.Println("[worker.IntelligenceRefresher] stopped")
}
