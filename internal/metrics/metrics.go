// Package metrics defines and registers all custom Prometheus metrics for
// the dealer portal. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// BackendRequestsTotal counts outbound calls to the dealership backend.
// Labels:
//   - operation: logical backend operation (e.g. "list_cars", "login")
//   - outcome: "ok", "unauthorized", "not_found", "client_error",
//     "server_error", or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of outbound backend requests, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// BackendRequestDuration measures the latency of outbound backend calls.
// Label:
//   - operation: logical backend operation
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// SessionDecodeFailuresTotal counts credentials that failed to decode into
// an identity and were purged from storage.
// Label:
//   - phase: "login" (freshly issued token) or "restore" (persisted token)
var SessionDecodeFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_decode_failures_total",
		Help:      "Total number of bearer credentials that could not be decoded.",
	},
	[]string{"phase"},
)
