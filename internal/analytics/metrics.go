package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	issuesFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_rootcause_issues_total",
		Help: "Root-cause issues emitted by category and severity.",
	}, []string{"category", "severity"})

	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "leadintel_optimization_sweep_duration_seconds",
		Help:    "Wall time of a full optimization report.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	campaignsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leadintel_optimization_campaigns_skipped_total",
		Help: "Campaigns left out of an optimization report after an error.",
	})
)
