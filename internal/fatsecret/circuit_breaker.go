// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/nutriproxy/internal/logging"
	"github.com/tomtom215/nutriproxy/internal/metrics"
	fsmodels "github.com/tomtom215/nutriproxy/internal/models/fatsecret"
)

// BreakerName labels the vendor circuit breaker in logs and metrics.
const BreakerName = "fatsecret-api"

// BreakerSettings tunes the vendor circuit breaker.
type BreakerSettings struct {
	MaxRequests  uint32        // Requests allowed in half-open state
	Interval     time.Duration // Closed-state window after which counts reset
	Timeout      time.Duration // Open-state wait before probing again
	MinRequests  uint32        // Requests needed before the failure ratio is trusted
	FailureRatio float64       // Failure ratio that opens the circuit
}

// DefaultBreakerSettings returns the production breaker settings:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreakerClient wraps an API with the circuit breaker pattern so a
// failing vendor is not hammered by every incoming request.
//
// Not-found answers and caller cancellations are successes from the breaker's
// point of view: they say nothing about the vendor's health.
type CircuitBreakerClient struct {
	client API
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

var _ API = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps client with a circuit breaker.
func NewCircuitBreakerClient(client API, settings BreakerSettings) *CircuitBreakerClient {
	cbName := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: isBreakerSuccess,
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// isBreakerSuccess decides which errors count against the vendor.
func isBreakerSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTokenAcquisition) ||
		errors.Is(err, context.Canceled)
}

// execute wraps a vendor call with circuit breaker protection. A rejected
// call is reported as ErrUnavailable.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}

		if isBreakerSuccess(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		}
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// State returns the breaker state as a string: closed, half-open or open.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
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

// SearchFoods runs foods.search with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchFoods(ctx context.Context, q SearchQuery) (*fsmodels.SearchResponse, error) {
	return castResult[fsmodels.SearchResponse](cbc.execute(func() (interface{}, error) {
		return cbc.client.SearchFoods(ctx, q)
	}))
}

// GetFood runs food.get.v2 with circuit breaker protection
func (cbc *CircuitBreakerClient) GetFood(ctx context.Context, foodID string) (*fsmodels.FoodDetail, error) {
	return castResult[fsmodels.FoodDetail](cbc.execute(func() (interface{}, error) {
		return cbc.client.GetFood(ctx, foodID)
	}))
}

// FindFoodIDForBarcode runs food.find_id_for_barcode with circuit breaker protection
func (cbc *CircuitBreakerClient) FindFoodIDForBarcode(ctx context.Context, barcode string) (string, error) {
	id, err := castResult[string](cbc.execute(func() (interface{}, error) {
		id, err := cbc.client.FindFoodIDForBarcode(ctx, barcode)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}))
	if err != nil {
		return "", err
	}
	return *id, nil
}
