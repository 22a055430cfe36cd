// Package observability exposes the Prometheus instrumentation for the
// service: request-level HTTP metrics and a per-status order gauge kept
// current by the stats snapshot job.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fleetboard", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fleetboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "fleetboard", Name: "orders_by_status", Help: "Current number of orders per lifecycle status"},
		[]string{"status"},
	)
	DataResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "fleetboard", Name: "data_resets_total", Help: "Total demo data resets performed"},
	)
)
