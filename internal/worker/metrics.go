package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var jobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "leadintel_worker_runs_total",
	Help: "Background job runs by job and outcome.",
}, []string{"job", "outcome"})
