package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palavradiaria/palavra-api/internal/api/shared"
	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/service"
	"github.com/palavradiaria/palavra-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"malformed body", fmt.Errorf("%w: bad json", shared.ErrMalformedBody), http.StatusBadRequest},
		{"empty verse text", domain.ErrVerseTextEmpty, http.StatusBadRequest},
		{"invalid image source", domain.ErrInvalidImageSource, http.StatusBadRequest},
		{"verse not found", store.ErrVerseNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrNotFound), http.StatusNotFound},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"invalid config", generation.ErrInvalidConfig, http.StatusInternalServerError},
		{"provider not configured", service.ErrProviderNotConfigured, http.StatusInternalServerError},
		{"generation failed", generation.ErrGenerationFailed, http.StatusBadGateway},
		{"invalid model response", generation.ErrInvalidResponse, http.StatusBadGateway},
		{"no image", generation.ErrNoImage, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessageNeverLeaksDetail(t *testing.T) {
	err := fmt.Errorf("%w: pq: connection refused host=10.0.0.5", generation.ErrGenerationFailed)

	msg := GetSafeErrorMessage(err)

	assert.NotContains(t, msg, "10.0.0.5")
	assert.Equal(t, "Content generation is temporarily unavailable", msg)
}
