package sending

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "leadintel_emails_sent_total",
	Help: "Outbound emails by provider and outcome.",
}, []string{"provider", "outcome"})
