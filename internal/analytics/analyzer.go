package analytics

import (
	"context"
	"log"
	"time"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

// Delays are the artificial latencies of each analysis step.
type Delays struct {
	Performance time.Duration
	RootCause   time.Duration
	Predict     time.Duration
	Suggest     time.Duration
	Dashboard   time.Duration
}

// DefaultDelays mimic a remote analytics backend.
func DefaultDelays() Delays {
	return Delays{
		Performance: 800 * time.Millisecond,
		RootCause:   time.Second,
		Predict:     1200 * time.Millisecond,
		Suggest:     900 * time.Millisecond,
		Dashboard:   700 * time.Millisecond,
	}
}

// Analyzer runs the per-campaign analysis pipeline. It is safe for
// concurrent use when its random source is.
type Analyzer struct {
	filter RegionFilter
	rnd    simulate.Source
	delays Delays
}

// NewAnalyzer creates an analyzer. rnd drives the predictive jitter.
func NewAnalyzer(filter RegionFilter, rnd simulate.Source, delays Delays) *Analyzer {
	return &Analyzer{filter: filter, rnd: rnd, delays: delays}
}

// Performance returns the campaign's current metrics alongside the
// filtered regional rows, the weekly series and the benchmarks.
func (a *Analyzer) Performance(ctx context.Context, c *domain.Campaign) (*domain.PerformanceAnalysis, error) {
	if err := simulate.Sleep(ctx, a.delays.Performance); err != nil {
		return nil, err
	}

	regional := []domain.RegionalPerformance{}
	for _, row := range regionalTable() {
		if a.filter.Include(row, c.TargetRegion) {
			regional = append(regional, row)
		}
	}

	return &domain.PerformanceAnalysis{
		Current: domain.Metrics{
			OpenRate:       c.OpenRate,
			ClickRate:      c.ClickRate,
			ResponseRate:   c.ResponseRate,
			ConversionRate: c.ResponseRate * ConversionShare,
		},
		Regional:   regional,
		TimeSeries: timeSeries(),
		Benchmarks: Benchmarks(),
	}, nil
}

// RootCause compares the analysis against the campaign's regional
// benchmark and collects the matching recommendations.
func (a *Analyzer) RootCause(ctx context.Context, c *domain.Campaign, pa *domain.PerformanceAnalysis) (*domain.RootCauseAnalysis, error) {
	if err := simulate.Sleep(ctx, a.delays.RootCause); err != nil {
		return nil, err
	}
	issues := FindIssues(c, pa)
	for _, is := range issues {
		issuesFound.WithLabelValues(string(is.Category), string(is.Severity)).Inc()
	}
	return &domain.RootCauseAnalysis{
		Issues:          issues,
		Recommendations: RecommendationsFor(issues),
	}, nil
}

// Predict jitters each current rate by up to ±10%.
func (a *Analyzer) Predict(ctx context.Context, c *domain.Campaign, pa *domain.PerformanceAnalysis) (*domain.Prediction, error) {
	if err := simulate.Sleep(ctx, a.delays.Predict); err != nil {
		return nil, err
	}
	return &domain.Prediction{
		Predicted: domain.Metrics{
			OpenRate:     pa.Current.OpenRate * a.jitter(),
			ClickRate:    pa.Current.ClickRate * a.jitter(),
			ResponseRate: pa.Current.ResponseRate * a.jitter(),
		},
		Confidence: PredictionConfidence,
		Factors:    predictionFactors(),
	}, nil
}

func (a *Analyzer) jitter() float64 {
	return 1 + (a.rnd.Float64()*0.2 - 0.1)
}

// Suggest forwards the root-cause recommendations with the projected uplift.
func (a *Analyzer) Suggest(ctx context.Context, c *domain.Campaign, rca *domain.RootCauseAnalysis, p *domain.Prediction) (*domain.OptimizationSuggestions, error) {
	if err := simulate.Sleep(ctx, a.delays.Suggest); err != nil {
		return nil, err
	}
	current := domain.Metrics{OpenRate: c.OpenRate, ClickRate: c.ClickRate, ResponseRate: c.ResponseRate}
	return &domain.OptimizationSuggestions{
		Suggestions:         append([]string(nil), rca.Recommendations...),
		ExpectedImprovement: ExpectedImprovement(current, p.Predicted),
	}, nil
}

// Dashboard returns the headline summary.
func (a *Analyzer) Dashboard(ctx context.Context) (*domain.DashboardAnalytics, error) {
	if err := simulate.Sleep(ctx, a.delays.Dashboard); err != nil {
		return nil, err
	}
	d := dashboardSummary()
	return &d, nil
}

// CampaignAnalysis bundles every step for a single campaign.
type CampaignAnalysis struct {
	Performance *domain.PerformanceAnalysis     `json:"performance"`
	RootCause   *domain.RootCauseAnalysis       `json:"root_cause"`
	Prediction  *domain.Prediction              `json:"prediction"`
	Suggestions *domain.OptimizationSuggestions `json:"suggestions"`
}

// Analyze runs performance, root cause, prediction and suggestions in order.
func (a *Analyzer) Analyze(ctx context.Context, c *domain.Campaign) (*CampaignAnalysis, error) {
	pa, err := a.Performance(ctx, c)
	if err != nil {
		return nil, err
	}
	rca, err := a.RootCause(ctx, c, pa)
	if err != nil {
		return nil, err
	}
	pred, err := a.Predict(ctx, c, pa)
	if err != nil {
		return nil, err
	}
	sugg, err := a.Suggest(ctx, c, rca, pred)
	if err != nil {
		return nil, err
	}
	log.Printf("[analytics.Analyzer] campaign %s: %d issues, +%.0f%% expected", c.ID, len(rca.Issues), sugg.ExpectedImprovement)
	return &CampaignAnalysis{Performance: pa, RootCause: rca, Prediction: pred, Suggestions: sugg}, nil
}
