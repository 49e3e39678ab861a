// Package metrics exposes Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	CredentialVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credential_verifications_total",
			Help: "Bearer credential verifications by issuer and outcome",
		},
		[]string{"issuer", "outcome"},
	)

	KeySetFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signing_key_set_fetches_total",
			Help: "Identity provider signing key set fetches",
		},
		[]string{"outcome"},
	)

	AuthorizationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authorization_decisions_total",
			Help: "Authorization decisions by role, resource kind, operation and outcome",
		},
		[]string{"role", "kind", "operation", "outcome"},
	)

	SMSDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_deliveries_total",
			Help: "Outbound SMS deliveries",
		},
		[]string{"outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDecision counts one authorization decision. outcome is "allow" or
// the deny reason.
func RecordDecision(role, kind, operation, outcome string) {
	AuthorizationDecisions.WithLabelValues(role, kind, operation, outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
