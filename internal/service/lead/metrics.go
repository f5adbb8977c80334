package lead

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scrapedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_leads_scraped_total",
		Help: "Synthetic leads produced by source.",
	}, []string{"source"})

	evaluatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_leads_evaluated_total",
		Help: "Lead evaluations by outcome (evaluated, passed_through).",
	}, []string{"outcome"})
)
