package lead

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/quotable/leadintel/internal/domain"
)

// Service coordinates lead scraping, evaluation and persistence.
type Service struct {
	repo      Repository
	scraper   *Scraper
	evaluator *Evaluator
}

// NewService creates a new lead service.
func NewService(repo Repository, scraper *Scraper, evaluator *Evaluator) *Service {
	return &Service{repo: repo, scraper: scraper, evaluator: evaluator}
}

// GenerateOptions request leads straight from the generator, without the
// crawl delays.
type GenerateOptions struct {
	Count    int    `json:"count"`
	Region   string `json:"region"`
	Industry string `json:"industry"`
}

// Generate creates Count leads (one when zero) and stores them.
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) ([]domain.Lead, error) {
	if opts.Count < 0 || opts.Count > MaxScrapeResults {
		return nil, fmt.Errorf("%w: count must be between 0 and %d", ErrInvalidOptions, MaxScrapeResults)
	}
	if opts.Count == 0 {
		opts.Count = 1
	}
	if opts.Industry == "" {
		opts.Industry = DefaultIndustry
	}
	leads := make([]domain.Lead, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		leads = append(leads, s.scraper.gen.Generate(opts.Region, opts.Industry))
	}
	if err := s.repo.Save(ctx, leads...); err != nil {
		return nil, fmt.Errorf("save generated leads: %w", err)
	}
	return leads, nil
}

// Scrape runs a simulated crawl and stores the results.
func (s *Service) Scrape(ctx context.Context, opts ScrapeOptions) ([]domain.Lead, error) {
	leads, err := s.scraper.Scrape(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, leads...); err != nil {
		return nil, fmt.Errorf("save scraped leads: %w", err)
	}
	return leads, nil
}

// Evaluate scores the given leads and stores those that were evaluated.
// Passed-through leads are returned but left untouched in the repository.
// Inline leads without an id are given one before scoring.
func (s *Service) Evaluate(ctx context.Context, leads []domain.Lead) ([]domain.Evaluation, Summary, error) {
	leads = withIDs(leads)
	results, sum, evalErr := s.evaluator.Evaluate(ctx, leads)

	scored := make([]domain.Lead, 0, len(results))
	for _, r := range results {
		if r.Evaluated {
			scored = append(scored, r.Lead)
		}
	}
	if len(scored) > 0 {
		// Persist finished work even when the batch was cut short.
		if err := s.repo.Save(context.WithoutCancel(ctx), scored...); err != nil {
			return results, sum, fmt.Errorf("save evaluated leads: %w", err)
		}
	}
	return results, sum, evalErr
}

func withIDs(leads []domain.Lead) []domain.Lead {
	out := make([]domain.Lead, len(leads))
	copy(out, leads)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = "lead-" + uuid.NewString()
		}
	}
	return out
}

// EvaluateByID loads stored leads and evaluates them. Unknown ids fail the
// whole request before any model call is made.
func (s *Service) EvaluateByID(ctx context.Context, ids []string) ([]domain.Evaluation, Summary, error) {
	leads := make([]domain.Lead, 0, len(ids))
	for _, id := range ids {
		l, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, Summary{}, err
		}
		leads = append(leads, *l)
	}
	return s.Evaluate(ctx, leads)
}

// Get returns a single lead.
func (s *Service) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.repo.Get(ctx, id)
}

// List returns stored leads matching filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Lead, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus sets a lead's status. Any valid status may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	log.Printf("[lead.Service] lead %s -> %s", id, status)
	return s.repo.Get(ctx, id)
}
