// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kateder_api_requests_total",
			Help: "Total number of backend API calls",
		},
		[]string{"capability", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kateder_api_request_duration_seconds",
			Help:    "Backend API round-trip duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"capability", "method"},
	)

	SessionEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kateder_session_evictions_total",
			Help: "Times a 401 response wiped the stored credential",
		},
	)
)
