package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TerminalRequestDuration is the latency of calls to the terminal bridge.
var TerminalRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "dashboard",
		Subsystem: "terminal",
		Name:      "request_duration_seconds",
		Help:      "Latency of terminal bridge requests in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"endpoint"},
)

// TerminalRequestErrors counts failed terminal bridge requests.
var TerminalRequestErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "terminal",
		Name:      "request_errors_total",
		Help:      "Total number of failed terminal bridge requests",
	},
	[]string{"endpoint"},
)

// CacheLookups counts deal and position cache lookups by result (hit, miss).
var CacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Total number of feed cache lookups",
	},
	[]string{"kind", "result"},
)

// DealsNormalized counts deals that passed normalization.
var DealsNormalized = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "analytics",
		Name:      "deals_normalized_total",
		Help:      "Total number of normalized deals",
	},
)

// IntegrityErrors counts deal batches rejected for unknown entry codes.
var IntegrityErrors = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "analytics",
		Name:      "integrity_errors_total",
		Help:      "Total number of deal batches rejected by normalization",
	},
)

// ReportsSent counts monthly reports by outcome (sent, failed, skipped).
var ReportsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "report",
		Name:      "sent_total",
		Help:      "Total number of performance reports by outcome",
	},
	[]string{"outcome"},
)

const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)
