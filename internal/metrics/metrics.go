package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freethrows_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// RequestDuration observes request latency per path.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "freethrows_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SectionFailures counts report sections that rendered an inline error.
	SectionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freethrows_report_section_failures_total",
		Help: "Report sections that failed to render.",
	}, []string{"section"})
)
