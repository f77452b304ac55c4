package embedding

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig controls when the embedding circuit opens.
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// BreakerProvider fails fast while the wrapped provider keeps failing. It never retries.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerProvider(next Provider, cfg BreakerConfig, onStateChange func(name string, from, to gobreaker.State)) *BreakerProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: onStateChange,
		IsSuccessful:  countsAsHealthy,
	})
	return &BreakerProvider{next: next, cb: cb}
}

func (p *BreakerProvider) Model() string {
	return p.next.Model()
}

func (p *BreakerProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out, err := p.cb.Execute(func() (interface{}, error) {
		return p.next.Embed(ctx, texts)
	})
	if err != nil {
		return nil, err
	}
	return out.([][]float32), nil
}

// IsCircuitOpen reports whether err came from the breaker rejecting the call.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// countsAsHealthy: success, cancellation and any 4xx but 429 leave the circuit closed.
func countsAsHealthy(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode < 500 && perr.StatusCode != http.StatusTooManyRequests
	}
	return false
}
