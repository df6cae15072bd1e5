// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status class",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route"},
	)

	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Completion-path outcomes by feature and path (ai or fallback)",
		},
		[]string{"feature", "path"},
	)

	CompletionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_failures_total",
			Help: "Completion API failures by tagged reason",
		},
		[]string{"reason"},
	)

	LeadSinkFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_sink_failures_total",
			Help: "Best-effort secondary sink failures by sink name",
		},
		[]string{"sink"},
	)
)
