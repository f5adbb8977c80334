package intelligence

import (
	"math"

	"github.com/quotable/leadintel/internal/domain"
)

// Fixed KPI values with no live source.
const (
	marketCoverageChange = 8
	newOpportunities     = 12
	trendAlignment       = 89
)

// KPIs are the headline figures shown beside the report.
type KPIs struct {
	MarketCoverage       int `json:"market_coverage"`
	MarketCoverageChange int `json:"market_coverage_change"`
	CompetitiveEdge      int `json:"competitive_edge"`
	NewOpportunities     int `json:"new_opportunities"`
	TrendAlignment       int `json:"trend_alignment"`
}

// DeriveKPIs computes coverage as qualified over total leads and edge as
// response over open rate, both as rounded percentages.
func DeriveKPIs(d *domain.DashboardAnalytics) KPIs {
	k := KPIs{
		MarketCoverageChange: marketCoverageChange,
		NewOpportunities:     newOpportunities,
		TrendAlignment:       trendAlignment,
	}
	if d.TotalLeads > 0 {
		k.MarketCoverage = int(math.Round(float64(d.QualifiedLeads) / float64(d.TotalLeads) * 100))
	}
	if d.AverageOpenRate > 0 {
		k.CompetitiveEdge = int(math.Round(d.AverageResponseRate / d.AverageOpenRate * 100))
	}
	return k
}
