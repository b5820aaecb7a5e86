package resilience

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// Health is a point-in-time snapshot of the client's view of the upstream.
type Health struct {
	// Name identifies the client the snapshot belongs to.
	Name string

	// CircuitState is the current circuit breaker state.
	CircuitState gobreaker.State

	// Counts contains circuit breaker statistics.
	Counts gobreaker.Counts

	// LastSuccessAt is the timestamp of the last successful request.
	LastSuccessAt *time.Time

	// LastFailureAt is the timestamp of the last failed request.
	LastFailureAt *time.Time

	// LastError is the most recent error message, if any.
	LastError string
}

// IsHealthy reports whether requests flow normally (circuit closed).
func (h Health) IsHealthy() bool {
	return h.CircuitState == gobreaker.StateClosed
}

// IsDegraded reports whether the upstream is being probed (circuit half-open).
func (h Health) IsDegraded() bool {
	return h.CircuitState == gobreaker.StateHalfOpen
}

// IsUnhealthy reports whether requests are being rejected (circuit open).
func (h Health) IsUnhealthy() bool {
	return h.CircuitState == gobreaker.StateOpen
}

// Health returns a snapshot of the circuit state and recorded request
// outcomes. It is safe to call concurrently with Do.
func (c *Client) Health() Health {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Health{
		Name:          c.config.Name,
		CircuitState:  c.circuitBreaker.State(),
		Counts:        c.circuitBreaker.Counts(),
		LastSuccessAt: c.lastSuccessAt,
		LastFailureAt: c.lastFailureAt,
		LastError:     c.lastError,
	}
}
