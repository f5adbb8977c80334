package intelligence

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/llm"
	"github.com/quotable/leadintel/internal/storage"
)

// DefaultIndustry is the vertical reports are written for.
const DefaultIndustry = "insurance"

// HeadlineSource supplies recent news titles. *feed.Reader implements it.
type HeadlineSource interface {
	Headlines(ctx context.Context) ([]string, error)
}

// DashboardSource supplies the summary KPIs are derived from.
// *analytics.Analyzer implements it.
type DashboardSource interface {
	Dashboard(ctx context.Context) (*domain.DashboardAnalytics, error)
}

// Config wires a Service. Headlines and Archive are optional.
type Config struct {
	Completer llm.Completer
	Prompts   *llm.Prompts
	Headlines HeadlineSource
	Dashboard DashboardSource
	Archive   storage.Archive
	Industry  string
}

// Service generates and serves market intelligence reports.
type Service struct {
	completer llm.Completer
	prompts   *llm.Prompts
	headlines HeadlineSource
	dashboard DashboardSource
	archive   storage.Archive
	industry  string
	now       func() time.Time

	mu     sync.RWMutex
	latest *Snapshot
}

func NewService(cfg Config) *Service {
	industry := cfg.Industry
	if industry == "" {
		industry = DefaultIndustry
	}
	return &Service{
		completer: cfg.Completer,
		prompts:   cfg.Prompts,
		headlines: cfg.Headlines,
		dashboard: cfg.Dashboard,
		archive:   cfg.Archive,
		industry:  industry,
		now:       time.Now,
	}
}

// Generate asks the model for a fresh report. Output that does not decode
// or validate fails with *llm.ParseError and leaves the current report in
// place. A failed archive write is logged but does not fail generation.
func (s *Service) Generate(ctx context.Context) (*Snapshot, error) {
	headlines := s.recentHeadlines(ctx)

	vars := map[string]interface{}{
		"industry":  s.industry,
		"headlines": headlines,
	}
	system, err := s.prompts.Render(llm.PromptIntelligenceSystem, vars)
	if err != nil {
		return nil, err
	}
	user, err := s.prompts.Render(llm.PromptIntelligenceUser, vars)
	if err != nil {
		return nil, err
	}

	raw, err := s.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		Temperature: llm.DefaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate intelligence report: %w", err)
	}

	report, err := llm.DecodeJSON[Report]("intelligence report", raw)
	if err != nil {
		log.Printf("[intelligence.Service] rejected model output: %v", err)
		return nil, err
	}

	snap := &Snapshot{
		Report:      *report,
		Source:      SourceGenerated,
		Headlines:   headlines,
		GeneratedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()

	if s.archive != nil {
		key, err := storage.SaveReport(context.WithoutCancel(ctx), s.archive, storage.KindIntelligence, snap.GeneratedAt, snap)
		if err != nil {
			log.Printf("[intelligence.Service] archive failed: %v", err)
		} else {
			log.Printf("[intelligence.Service] archived report to %s", key)
		}
	}

	log.Printf("[intelligence.Service] generated report: %d competitors, %d opportunities, %d trends",
		len(report.Competitors), len(report.MarketOpportunities), len(report.IndustryTrends))
	return snap, nil
}

func (s *Service) recentHeadlines(ctx context.Context) []string {
	if s.headlines == nil {
		return []string{}
	}
	h, err := s.headlines.Headlines(ctx)
	if err != nil {
		log.Printf("[intelligence.Service] headlines unavailable: %v", err)
		return []string{}
	}
	return h
}

// Latest returns the most recent report: the last generated one, else the
// newest archived one, else the default report.
func (s *Service) Latest(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()
	if latest != nil {
		cp := *latest
		return &cp, nil
	}

	if s.archive != nil {
		var snap Snapshot
		_, err := storage.LatestReport(ctx, s.archive, storage.KindIntelligence, &snap)
		switch {
		case err == nil:
			snap.Source = SourceArchive
			s.mu.Lock()
			if s.latest == nil {
				s.latest = &snap
			}
			s.mu.Unlock()
			cp := snap
			return &cp, nil
		case errors.Is(err, storage.ErrNotFound):
		default:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[intelligence.Service] archive lookup failed: %v", err)
		}
	}

	return &Snapshot{Report: DefaultReport(), Source: SourceDefault}, nil
}

// KPIs derives the headline figures from the dashboard summary.
func (s *Service) KPIs(ctx context.Context) (*KPIs, error) {
	d, err := s.dashboard.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	k := DeriveKPIs(d)
	return &k, nil
}
