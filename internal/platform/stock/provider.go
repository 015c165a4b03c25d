// Package stock contains thin clients for the stock photo search APIs used
// as image fallbacks. Both providers implement a common Provider interface
// so the image service can try them in order.
package stock

import (
	"context"
	"errors"
	"math/rand"
)

// Common errors returned by the stock providers.
var (
	// ErrMissingAPIKey is returned when a provider is constructed without a key.
	ErrMissingAPIKey = errors.New("stock provider API key cannot be empty")

	// ErrNoResults is returned when the provider search yields no photos.
	ErrNoResults = errors.New("no photos found")
)

// Provider fetches one image URL from a stock photo service, using a random
// nature-themed query so repeated calls stay visually varied.
type Provider interface {
	// Name identifies the provider in logs and fallback ordering.
	Name() string

	// Fetch returns a single portrait-oriented image URL.
	// Returns ErrNoResults when the search comes back empty.
	Fetch(ctx context.Context) (string, error)
}

// natureQueries is the shared vocabulary for fallback searches. Keeping one
// list for both providers keeps the fallback imagery thematically
// consistent with the generated backgrounds.
var natureQueries = []string{
	"nature landscape",
	"beautiful sky",
	"sunset over mountains",
	"peaceful forest",
	"ocean waves sunrise",
	"heavenly clouds",
	"spiritual nature light",
	"abstract nature textures",
}

// randomNatureQuery draws from the shared vocabulary. The top-level rand
// functions are safe for concurrent requests.
func randomNatureQuery() string {
	return natureQueries[rand.Intn(len(natureQueries))]
}
