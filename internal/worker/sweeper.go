package worker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/distlock"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/storage"
)

const (
	// DefaultSweepInterval is used when the config leaves the interval unset.
	DefaultSweepInterval = time.Hour

	listPageSize = 100
)

// CampaignLister is the read side of the campaign service.
type CampaignLister interface {
	List(ctx context.Context, f campaign.ListFilter) ([]domain.Campaign, error)
}

// SweeperConfig wires a Sweeper. Archive is optional.
type SweeperConfig struct {
	Campaigns CampaignLister
	Optimizer *analytics.Optimizer
	Cache     *analytics.ReportCache
	Archive   storage.Archive
	Lock      distlock.DistLock
	Interval  time.Duration
}

// Sweeper periodically builds the cross-campaign optimization report.
type Sweeper struct {
	campaigns CampaignLister
	optimizer *analytics.Optimizer
	cache     *analytics.ReportCache
	archive   storage.Archive
	lock      distlock.DistLock
	interval  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewSweeper creates a Sweeper. A nil lock falls back to a process-local one.
func NewSweeper(cfg SweeperConfig) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSweepInterval
	}
	if cfg.Lock == nil {
		cfg.Lock = distlock.NewLocalLock("leadintel:sweep")
	}
	return &Sweeper{
		campaigns: cfg.Campaigns,
		optimizer: cfg.Optimizer,
		cache:     cfg.Cache,
		archive:   cfg.Archive,
		lock:      cfg.Lock,
		interval:  cfg.Interval,
	}
}

// RunOnce sweeps every campaign, caches the report and archives it when
// an archive is configured. Archive failures are logged only.
func (s *Sweeper) RunOnce(ctx context.Context) (*domain.OptimizationReport, error) {
	campaigns, err := s.listAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	report, err := s.optimizer.Run(ctx, campaigns)
	if err != nil {
		return nil, err
	}
	s.cache.Store(report)

	if s.archive != nil {
		key, err := storage.SaveReport(context.WithoutCancel(ctx), s.archive, storage.KindOptimization, report.GeneratedAt, report)
		if err != nil {
			log.Printf("[worker.Sweeper] archive failed: %v", err)
		} else {
			log.Printf("[worker.Sweeper] archived report to %s", key)
		}
	}
	return report, nil
}

func (s *Sweeper) listAll(ctx context.Context) ([]domain.Campaign, error) {
	var all []domain.Campaign
	for offset := 0; ; offset += listPageSize {
		page, err := s.campaigns.List(ctx, campaign.ListFilter{Limit: listPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}

// Start begins sweeping in the background. It is a no-op when running.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	ctx, s.cancel = context.WithCancel(ctx)
	log.Printf("[worker.Sweeper] starting with interval=%s", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		Every(ctx, "Sweeper", s.interval, s.lock, func(ctx context.Context) error {
			_, err := s.RunOnce(ctx)
			return err
		})
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to return.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	log.Println("[worker.Sweeper] stopped")
}
