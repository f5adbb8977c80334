package analytics

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quotable/leadintel/internal/domain"
)

// DefaultConcurrency bounds how many campaigns are analyzed at once.
const DefaultConcurrency = 4

// CampaignAnalyzer runs the full analysis for one campaign. *Analyzer
// implements it.
type CampaignAnalyzer interface {
	Analyze(ctx context.Context, c *domain.Campaign) (*CampaignAnalysis, error)
}

// Optimizer builds the cross-campaign optimization report.
type Optimizer struct {
	analyzer    CampaignAnalyzer
	concurrency int
	now         func() time.Time
}

// NewOptimizer creates an optimizer. A non-positive concurrency uses
// DefaultConcurrency.
func NewOptimizer(a CampaignAnalyzer, concurrency int) *Optimizer {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Optimizer{analyzer: a, concurrency: concurrency, now: time.Now}
}

type campaignResult struct {
	recs        []domain.Recommendation
	improvement float64
	ok          bool
}

// Run analyzes every campaign and merges their recommendations. A
// campaign whose analysis fails is logged and skipped; only context
// cancellation aborts the run.
func (o *Optimizer) Run(ctx context.Context, campaigns []domain.Campaign) (*domain.OptimizationReport, error) {
	start := time.Now()
	defer func() { sweepDuration.Observe(time.Since(start).Seconds()) }()

	results := make([]campaignResult, len(campaigns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range campaigns {
		c := &campaigns[i]
		g.Go(func() error {
			analysis, err := o.analyzer.Analyze(gctx, c)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("[analytics.Optimizer] skipping campaign %s: %v", c.ID, err)
				campaignsSkipped.Inc()
				return nil
			}
			results[i] = campaignResult{
				recs:        BuildRecommendations(c, analysis.RootCause.Issues, analysis.Suggestions.Suggestions),
				improvement: analysis.Suggestions.ExpectedImprovement,
				ok:          true,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.OptimizationReport{
		Recommendations: []domain.Recommendation{},
		GeneratedAt:     o.now().UTC(),
	}
	var total float64
	for _, r := range results {
		if !r.ok {
			report.CampaignsSkipped++
			continue
		}
		report.CampaignsAnalyzed++
		total += r.improvement
		report.Recommendations = append(report.Recommendations, r.recs...)
	}
	SortRecommendations(report.Recommendations)
	if len(campaigns) > 0 {
		report.ProjectedImpact = math.Round(total / float64(len(campaigns)))
	}
	report.Recount()

	log.Printf("[analytics.Optimizer] report: %d recommendations (%d high) across %d campaigns, %d skipped",
		report.RecommendationsCount, report.HighPriorityCount, report.CampaignsAnalyzed, report.CampaignsSkipped)
	return report, nil
}

// BuildRecommendations turns each issue into a pending recommendation.
// Descriptions cycle through suggestions, falling back to the issue text.
func BuildRecommendations(c *domain.Campaign, issues []domain.Issue, suggestions []string) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(issues))
	for i, is := range issues {
		desc := is.Description
		if len(suggestions) > 0 {
			desc = suggestions[i%len(suggestions)]
		}
		recs = append(recs, domain.Recommendation{
			ID:                  fmt.Sprintf("%s-rec-%d", c.ID, i),
			CampaignID:          c.ID,
			Type:                is.Category,
			Title:               fmt.Sprintf("%s optimization for %s", capitalize(string(is.Category)), c.Name),
			Description:         desc,
			ExpectedImprovement: math.Round(is.Impact*2) / 2,
			Priority:            is.Severity,
			Status:              domain.RecommendationPending,
		})
	}
	return recs
}

// SortRecommendations orders by priority, then by expected improvement
// descending. Ties keep their input order.
func SortRecommendations(recs []domain.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := recs[i].Priority.Rank(), recs[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return recs[i].ExpectedImprovement > recs[j].ExpectedImprovement
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
