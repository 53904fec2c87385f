// Package metrics provides Prometheus instrumentation for veritrace.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	enabled bool

	// HTTP metrics
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec

	// Verification domain metrics
	verificationTotal *prometheus.CounterVec

	// Directory domain metrics
	directoryAggregateTotal  *prometheus.CounterVec
	directoryVendorSkipTotal prometheus.Counter

	// Registration domain metrics
	registrationTotal *prometheus.CounterVec

	// Transaction confirmation metrics
	txConfirmationTotal *prometheus.CounterVec
)

// Init initializes the metrics system.
func Init(enabledFlag bool) {
	enabled = enabledFlag

	if !enabled {
		return
	}

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	verificationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_total",
			Help: "Total number of verification lookups by outcome",
		},
		[]string{"result"},
	)

	directoryAggregateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_aggregate_total",
			Help: "Total number of directory aggregations",
		},
		[]string{"status"},
	)

	directoryVendorSkipTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "directory_vendor_skip_total",
			Help: "Vendors whose product fetch failed during aggregation",
		},
	)

	registrationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_total",
			Help: "Total number of registration writes by kind and status",
		},
		[]string{"kind", "status"},
	)

	txConfirmationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tx_confirmation_total",
			Help: "Total number of transaction confirmation waits by outcome",
		},
		[]string{"status"},
	)

	// Go runtime metrics are collected automatically by client_golang.
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	if !enabled {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	}
	return promhttp.Handler()
}

// Enabled returns whether metrics are enabled.
func Enabled() bool {
	return enabled
}
