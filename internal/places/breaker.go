package places

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the breaker is open and requests to
// the Places API are being rejected to prevent cascading failures.
var ErrCircuitOpen = errors.New("places: circuit breaker is open")

// breakerConfig holds circuit breaker tunables for upstream calls.
type breakerConfig struct {
	// maxFailures trips the circuit after this many consecutive failures.
	maxFailures uint32

	// timeout is how long the circuit stays open before half-open.
	timeout time.Duration

	// halfOpenMaxSuccesses closes the circuit again after this many
	// consecutive successes in half-open state.
	halfOpenMaxSuccesses uint32
}

func defaultBreakerConfig() breakerConfig {
	return breakerConfig{
		maxFailures:          3,
		timeout:              30 * time.Second,
		halfOpenMaxSuccesses: 2,
	}
}

// breaker wraps gobreaker for the Places client. Closed passes requests
// through; after maxFailures consecutive failures it opens and rejects
// until timeout elapses, then half-open test requests decide.
type breaker struct {
	cb *gobreaker.CircuitBreaker
}

func newBreaker(name string, cfg breakerConfig) *breaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.halfOpenMaxSuccesses,
		Timeout:     cfg.timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.maxFailures
		},
	}
	return &breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// execute runs fn through the breaker, translating the open-state error
// into ErrCircuitOpen. Context cancellation short-circuits before the
// call counts against the breaker.
func (b *breaker) execute(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}
	return result, nil
}

// state returns the breaker state as a string: closed, open, half-open.
func (b *breaker) state() string {
	switch b.cb.State() {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateOpen:
		return "open"
	case gobreaker.StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}
