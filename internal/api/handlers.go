package api

import (
	"context"
	"sync"

	"github.com/quotable/leadintel/internal/analytics"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/intelligence"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/lead"
	"github.com/quotable/leadintel/internal/storage"
	"github.com/quotable/leadintel/internal/tracking"
)

// ReportRefresher produces and caches a fresh optimization report.
// *worker.Sweeper implements it.
type ReportRefresher interface {
	RunOnce(ctx context.Context) (*domain.OptimizationReport, error)
}

// Suggester asks the model for campaign advice. *llm.Copywriter
// implements it.
type Suggester interface {
	SuggestOptimizations(ctx context.Context, c llm.CampaignSnapshot, p llm.PerformanceSnapshot) (*llm.Suggestions, error)
}

// Deps are the services behind the handlers. Suggester and Recorder may be
// nil; their routes then answer 503. Archive, when set, is where a
// separate worker process leaves its optimization reports.
type Deps struct {
	Leads        *lead.Service
	Campaigns    *campaign.Service
	Analyzer     *analytics.Analyzer
	Reports      *analytics.ReportCache
	Refresher    ReportRefresher
	Archive      storage.Archive
	Intelligence *intelligence.Service
	Suggester    Suggester
	Recorder     tracking.Recorder
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	leads        *lead.Service
	campaigns    *campaign.Service
	analyzer     *analytics.Analyzer
	reports      *analytics.ReportCache
	refresher    ReportRefresher
	archive      storage.Archive
	background   sync.WaitGroup
	intelligence *intelligence.Service
	suggester    Suggester
	recorder     tracking.Recorder
}

// NewHandlers creates handlers over deps.
func NewHandlers(d Deps) *Handlers {
	return &Handlers{
		leads:        d.Leads,
		campaigns:    d.Campaigns,
		analyzer:     d.Analyzer,
		reports:      d.Reports,
		refresher:    d.Refresher,
		archive:      d.Archive,
		intelligence: d.Intelligence,
		suggester:    d.Suggester,
		recorder:     d.Recorder,
	}
}

// Wait blocks until background work started by handlers has finished.
func (h *Handlers) Wait() {
	h.background.Wait()
}
