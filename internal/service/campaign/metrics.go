package campaign

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_campaign_transitions_total",
		Help: "Campaign status transitions by name and outcome.",
	}, []string{"transition", "outcome"})

	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadintel_campaign_dispatch_total",
		Help: "Single-lead campaign sends by outcome.",
	}, []string{"outcome"})
)
