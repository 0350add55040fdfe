// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// PostContentDuration tracks the duration of conversation turns,
	// including the remote Lex call and result decoding.
	PostContentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lex_post_content_duration_seconds",
			Help:    "Conversation turn duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"status"},
	)

	// PostContentTotal tracks conversation turns by outcome.
	PostContentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_post_content_total",
			Help: "Total conversation turns",
		},
		[]string{"status"},
	)

	// RemoteCallFailures tracks failed Lex runtime calls.
	RemoteCallFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lex_remote_call_failures_total",
			Help: "Total failed Lex runtime calls",
		},
	)

	// DecodeFailures tracks Lex results that could not be decoded.
	DecodeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lex_decode_failures_total",
			Help: "Total Lex results that failed to decode",
		},
	)

	// BusRequestsTotal tracks conversation requests arriving over the
	// message bus.
	BusRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_bus_requests_total",
			Help: "Total conversation requests received over NATS",
		},
		[]string{"status"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordPostContent records metrics for one conversation turn.
func RecordPostContent(status string, duration float64) {
	PostContentDuration.WithLabelValues(status).Observe(duration)
	PostContentTotal.WithLabelValues(status).Inc()
}
