package analytics

import (
	"math"

	"github.com/quotable/leadintel/internal/domain"
)

// PredictionConfidence is reported with every simulated prediction.
const PredictionConfidence = 0.85

// MinExpectedImprovement is the floor applied to projected uplift.
const MinExpectedImprovement = 5

// ExpectedImprovement is the rounded percentage change from the mean of
// the current open, click and response rates to the predicted mean,
// floored at MinExpectedImprovement. A zero current mean yields the floor.
func ExpectedImprovement(current, predicted domain.Metrics) float64 {
	cur := (current.OpenRate + current.ClickRate + current.ResponseRate) / 3
	if cur == 0 {
		return MinExpectedImprovement
	}
	pred := (predicted.OpenRate + predicted.ClickRate + predicted.ResponseRate) / 3
	pct := math.Round((pred - cur) / cur * 100)
	return math.Max(MinExpectedImprovement, pct)
}
