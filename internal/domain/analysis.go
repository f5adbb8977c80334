package domain

import "time"

// Metrics are the four percentage rates analytics works with.
type Metrics struct {
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	ResponseRate   float64 `json:"response_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

// RegionalPerformance is one row of the regional breakdown.
type RegionalPerformance struct {
	Region       string  `json:"region"`
	Leads        int     `json:"leads"`
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
	ResponseRate float64 `json:"response_rate"`
}

// TimeSeriesPoint is one weekly sample of campaign rates.
type TimeSeriesPoint struct {
	Date         string  `json:"date"`
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
	ResponseRate float64 `json:"response_rate"`
}

// Benchmarks hold the industry-wide and per-region reference rates.
type Benchmarks struct {
	Industry Metrics            `json:"industry"`
	Regional map[string]Metrics `json:"regional"`
}

// PerformanceAnalysis is recomputed on every request and never stored.
type PerformanceAnalysis struct {
	Current    Metrics               `json:"current"`
	Regional   []RegionalPerformance `json:"regional"`
	TimeSeries []TimeSeriesPoint     `json:"time_series"`
	Benchmarks Benchmarks            `json:"benchmarks"`
}

// IssueCategory classifies a root-cause issue.
type IssueCategory string

const (
	IssueContent         IssueCategory = "content"
	IssueTiming          IssueCategory = "timing"
	IssueTargeting       IssueCategory = "targeting"
	IssuePersonalization IssueCategory = "personalization"
)

// Severity ranks issues and recommendations.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities high first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// Issue explains one way a campaign underperforms its benchmark.
// Impact is unbounded.
type Issue struct {
	Category    IssueCategory `json:"category"`
	Severity    Severity      `json:"severity"`
	Description string        `json:"description"`
	Impact      float64       `json:"impact"`
}

// RootCauseAnalysis groups the issues for one campaign with the canned
// recommendations for their categories.
type RootCauseAnalysis struct {
	Issues          []Issue  `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// Factor is a named driver of predicted performance.
type Factor struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// Prediction is the output of the simulated predictive model.
type Prediction struct {
	Predicted  Metrics  `json:"predicted_performance"`
	Confidence float64  `json:"confidence"`
	Factors    []Factor `json:"factors"`
}

// OptimizationSuggestions pairs recommendations with a projected uplift.
type OptimizationSuggestions struct {
	Suggestions         []string `json:"suggestions"`
	ExpectedImprovement float64  `json:"expected_improvement"`
}

// RecommendationStatus tracks whether an operator acted on a recommendation.
type RecommendationStatus string

const (
	RecommendationPending RecommendationStatus = "pending"
	RecommendationApplied RecommendationStatus = "applied"
	RecommendationTesting RecommendationStatus = "testing"
)

// Recommendation is an actionable item derived from a root-cause issue.
type Recommendation struct {
	ID                  string               `json:"id"`
	CampaignID          string               `json:"campaign_id"`
	Type                IssueCategory        `json:"type"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	ExpectedImprovement float64              `json:"expected_improvement"`
	Priority            Severity             `json:"priority"`
	Status              RecommendationStatus `json:"status"`
}

// OptimizationReport is the cross-campaign recommendation set.
type OptimizationReport struct {
	Recommendations      []Recommendation `json:"recommendations"`
	ProjectedImpact      float64          `json:"projected_impact"`
	RecommendationsCount int              `json:"recommendations_count"`
	HighPriorityCount    int              `json:"high_priority_count"`
	CampaignsAnalyzed    int              `json:"campaigns_analyzed"`
	CampaignsSkipped     int              `json:"campaigns_skipped"`
	GeneratedAt          time.Time        `json:"generated_at"`
}

// ConversionPoint is one day of the dashboard conversion trend.
type ConversionPoint struct {
	Name        string `json:"name"`
	Conversions int    `json:"conversions"`
	Leads       int    `json:"leads"`
}

// DashboardAnalytics is the headline summary for the overview screen.
type DashboardAnalytics struct {
	TotalLeads          int               `json:"total_leads"`
	QualifiedLeads      int               `json:"qualified_leads"`
	ActiveCampaigns     int               `json:"active_campaigns"`
	AverageOpenRate     float64           `json:"average_open_rate"`
	AverageClickRate    float64           `json:"average_click_rate"`
	AverageResponseRate float64           `json:"average_response_rate"`
	TopPerformingRegion string            `json:"top_performing_region"`
	ConversionTrend     []ConversionPoint `json:"conversion_trend"`
}

// TrackingCounts are raw open/click tallies recorded for a campaign.
type TrackingCounts struct {
	CampaignID string `json:"campaign_id"`
	Opens      int64  `json:"opens"`
	Clicks     int64  `json:"clicks"`
}

// Recount refreshes the recommendation and high-priority counts.
func (r *OptimizationReport) Recount() {
	r.RecommendationsCount = len(r.Recommendations)
	r.HighPriorityCount = 0
	for _, rec := range r.Recommendations {
		if rec.Priority == SeverityHigh {
			r.HighPriorityCount++
		}
	}
}
