package analytics

import (
	"fmt"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/pkg/simulate"
)

// Region filter names accepted by NewRegionFilter.
const (
	RegionFilterSimulated = "simulated"
	RegionFilterExact     = "exact"
)

// RegionFilter decides which regional rows accompany a campaign's analysis.
type RegionFilter interface {
	Include(row domain.RegionalPerformance, targetRegion string) bool
}

// SimulatedRegion keeps the campaign's own region and each other region
// with probability one half.
type SimulatedRegion struct {
	Rand simulate.Source
}

func (f SimulatedRegion) Include(row domain.RegionalPerformance, target string) bool {
	return row.Region == target || f.Rand.Float64() > 0.5
}

// ExactRegion keeps only the campaign's own region.
type ExactRegion struct{}

func (ExactRegion) Include(row domain.RegionalPerformance, target string) bool {
	return row.Region == target
}

// NewRegionFilter resolves a filter by configuration name. An empty name
// selects the simulated filter.
func NewRegionFilter(name string, rnd simulate.Source) (RegionFilter, error) {
	switch name {
	case "", RegionFilterSimulated:
		return SimulatedRegion{Rand: rnd}, nil
	case RegionFilterExact:
		return ExactRegion{}, nil
	}
	return nil, fmt.Errorf("unknown region filter %q", name)
}
