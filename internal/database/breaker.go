// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/commonground/internal/config"
	"github.com/tomtom215/commonground/internal/logging"
	"github.com/tomtom215/commonground/internal/metrics"
	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/engine"
)

// BreakerName labels the store's circuit breaker in logs and metrics.
const BreakerName = "community-store"

// CircuitBreakerStore wraps a DataProvider with the circuit breaker pattern so
// a failing database rejects requests quickly instead of stalling every
// recommendation call.
//
// The breaker uses real time for its interval and timeout; tests drive it
// through request counts and a short timeout.
type CircuitBreakerStore struct {
	store engine.DataProvider
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

var _ engine.DataProvider = (*CircuitBreakerStore)(nil)

// NewCircuitBreakerStore wraps store. The circuit opens once at least
// MinRequests calls were seen in the current interval and the failure ratio
// reaches FailureRatio. Context cancellation is not counted as a failure.
func NewCircuitBreakerStore(store engine.DataProvider, cfg *config.BreakerConfig) *CircuitBreakerStore {
	name := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}

			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerStore{
		store: store,
		cb:    cb,
		name:  name,
	}
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (s *CircuitBreakerStore) State() string {
	return stateToString(s.cb.State())
}

// execute runs fn under the breaker and keeps the breaker metrics current.
// Rejections are reported as ErrCircuitOpen.
func (s *CircuitBreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := s.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", s.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
		counts := s.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(0)
	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// GetFeedback reads feedback with circuit breaker protection
func (s *CircuitBreakerStore) GetFeedback(ctx context.Context) ([]recommend.FeedbackRecord, error) {
	return castResult[[]recommend.FeedbackRecord](s.execute(func() (any, error) {
		return s.store.GetFeedback(ctx)
	}))
}

// GetEvents reads the event catalog with circuit breaker protection
func (s *CircuitBreakerStore) GetEvents(ctx context.Context) ([]recommend.Event, error) {
	return castResult[[]recommend.Event](s.execute(func() (any, error) {
		return s.store.GetEvents(ctx)
	}))
}

// GetRegistrations reads registrations with circuit breaker protection
func (s *CircuitBreakerStore) GetRegistrations(ctx context.Context) ([]recommend.Registration, error) {
	return castResult[[]recommend.Registration](s.execute(func() (any, error) {
		return s.store.GetRegistrations(ctx)
	}))
}

// GetProfiles reads profiles with circuit breaker protection
func (s *CircuitBreakerStore) GetProfiles(ctx context.Context) ([]recommend.Profile, error) {
	return castResult[[]recommend.Profile](s.execute(func() (any, error) {
		return s.store.GetProfiles(ctx)
	}))
}

// GetLikes reads likes with circuit breaker protection
func (s *CircuitBreakerStore) GetLikes(ctx context.Context) ([]recommend.Like, error) {
	return castResult[[]recommend.Like](s.execute(func() (any, error) {
		return s.store.GetLikes(ctx)
	}))
}
