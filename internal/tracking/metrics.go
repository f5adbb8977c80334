package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "leadintel_tracking_events_total",
	Help: "Tracking hits by event type and outcome.",
}, []string{"event", "outcome"})
