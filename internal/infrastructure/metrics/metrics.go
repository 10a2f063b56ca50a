// Package metrics exposes Prometheus instruments for the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "server",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aura",
			Subsystem: "server",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Auth attempts by operation (login, register, token) and outcome
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "server",
			Name:      "auth_attempts_total",
			Help:      "Authentication attempts by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	// Accounts
	AccountsRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "server",
			Name:      "accounts_registered_total",
			Help:      "Total accounts registered",
		},
	)

	// Conversations
	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "server",
			Name:      "conversations_created_total",
			Help:      "Total conversations created",
		},
	)

	// Messages
	MessagesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "server",
			Name:      "messages_created_total",
			Help:      "Total messages appended to conversations",
		},
	)
)

// RecordRequest records a completed HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordAuth records an authentication attempt outcome
func RecordAuth(operation, status string) {
	if operation == "" {
		operation = "unknown"
	}
	if status == "" {
		status = "unknown"
	}
	AuthAttemptsTotal.WithLabelValues(operation, status).Inc()
}
