package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExecutionsTotal counts code executions by language and verdict.
	ExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecraftx_executions_total",
			Help: "Total number of code executions",
		},
		[]string{"language", "verdict"},
	)

	// UpstreamRequestsTotal counts outbound calls by service and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecraftx_upstream_requests_total",
			Help: "Total number of outbound upstream requests",
		},
		[]string{"service", "outcome"},
	)

	// UpstreamRequestDuration tracks outbound call latency in seconds.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codecraftx_upstream_request_duration_seconds",
			Help:    "Duration of outbound upstream requests in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 11), // 50ms to ~100s
		},
		[]string{"service"},
	)
)

const (
	// OutcomeOK labels a successful upstream call.
	OutcomeOK = "ok"
	// OutcomeError labels a failed upstream call.
	OutcomeError = "error"
)
