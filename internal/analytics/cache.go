package analytics

import (
	"errors"
	"sync"

	"github.com/quotable/leadintel/internal/domain"
)

var (
	// ErrNoReport is returned before the first report has been stored.
	ErrNoReport = errors.New("no optimization report available")
	// ErrRecommendationNotFound is returned for an unknown recommendation id.
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// ReportCache holds the most recent optimization report. Callers always
// receive copies.
type ReportCache struct {
	mu     sync.RWMutex
	report *domain.OptimizationReport
}

func NewReportCache() *ReportCache {
	return &ReportCache{}
}

// Store replaces the cached report.
func (c *ReportCache) Store(r *domain.OptimizationReport) {
	cp := copyReport(r)
	c.mu.Lock()
	c.report = cp
	c.mu.Unlock()
}

// Latest returns the cached report.
func (c *ReportCache) Latest() (*domain.OptimizationReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.report == nil {
		return nil, ErrNoReport
	}
	return copyReport(c.report), nil
}

// Apply marks a recommendation as applied and returns it.
func (c *ReportCache) Apply(id string) (*domain.Recommendation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.report == nil {
		return nil, ErrNoReport
	}
	for i := range c.report.Recommendations {
		if c.report.Recommendations[i].ID == id {
			c.report.Recommendations[i].Status = domain.RecommendationApplied
			rec := c.report.Recommendations[i]
			return &rec, nil
		}
	}
	return nil, ErrRecommendationNotFound
}

// Dismiss removes a recommendation and refreshes the report counts.
func (c *ReportCache) Dismiss(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.report == nil {
		return ErrNoReport
	}
	recs := c.report.Recommendations
	for i := range recs {
		if recs[i].ID == id {
			c.report.Recommendations = append(recs[:i:i], recs[i+1:]...)
			c.report.Recount()
			return nil
		}
	}
	return ErrRecommendationNotFound
}

func copyReport(r *domain.OptimizationReport) *domain.OptimizationReport {
	cp := *r
	cp.Recommendations = append([]domain.Recommendation{}, r.Recommendations...)
	return &cp
}
