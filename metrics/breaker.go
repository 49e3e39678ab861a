package metrics

import (
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/mobility/logging"
)

// NewCircuitBreaker builds a breaker that opens after five consecutive
// failures and reports its state as a gauge.
func NewCircuitBreaker[T any](name string, openTimeout time.Duration) *gobreaker.CircuitBreaker[T] {
	CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state transition",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}
