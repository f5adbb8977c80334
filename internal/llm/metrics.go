package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_llm_requests_total",
		Help: "Completion requests by provider and outcome.",
	}, []string{"provider", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leadintel_llm_request_duration_seconds",
		Help:    "Completion latency by provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
	}, []string{"provider"})

	parseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_llm_parse_failures_total",
		Help: "Model outputs rejected by schema validation.",
	}, []string{"target"})
)
