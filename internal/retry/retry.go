// Package retry provides a bounded retry loop with exponential backoff for
// calls against rate-limited upstream services.
package retry

import (
	"context"
	"strings"
	"time"
)

// Policy bounds a retry loop. The delay before the first retry is
// InitialDelay and doubles after every retried failure; there is no jitter.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration
}

// DefaultTextPolicy matches the tuning used for text generation calls.
var DefaultTextPolicy = Policy{MaxRetries: 5, InitialDelay: 4 * time.Second}

// DefaultImagePolicy matches the tighter tuning used for image generation
// calls, where stock fallbacks make long retry runs wasteful.
var DefaultImagePolicy = Policy{MaxRetries: 3, InitialDelay: 2 * time.Second}

// transientMarkers are the error-message signatures of quota exhaustion and
// server overload. Matching is case-insensitive on the full error text.
var transientMarkers = []string{
	"429",
	"quota",
	"resource exhausted",
	"limit",
	"503",
	"overloaded",
}

// IsTransient reports whether the error looks like quota exhaustion or a
// transient overload, based on its message. Everything else is considered
// permanent and must not be retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// sleep waits for d or until the context is cancelled. Overridable in tests.
var sleep = func(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs op, retrying failures that retryable classifies as transient.
// Errors the classifier rejects propagate immediately with zero delay. When
// attempts are exhausted the last error is returned. Backoff waits respect
// context cancellation.
func Do[T any](
	ctx context.Context,
	policy Policy,
	retryable func(error) bool,
	op func(context.Context) (T, error),
) (T, error) {
	var zero T

	delay := policy.InitialDelay
	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if !retryable(err) || attempt >= policy.MaxRetries {
			return zero, err
		}

		if serr := sleep(ctx, delay); serr != nil {
			return zero, serr
		}
		delay *= 2
	}
}
