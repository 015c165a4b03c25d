// Package api exposes the HTTP surface: request/response models, handlers
// and the error-to-status mapping. Handlers never leak backend error text to
// clients; every error class has a fixed, safe message.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/palavradiaria/palavra-api/internal/api/shared"
	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/service"
	"github.com/palavradiaria/palavra-api/internal/store"
)

// MapErrorToStatusCode classifies an error into an HTTP status.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, shared.ErrMalformedBody),
		errors.Is(err, domain.ErrVerseTextEmpty),
		errors.Is(err, domain.ErrVerseReferenceEmpty),
		errors.Is(err, domain.ErrInvalidImageSource):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, generation.ErrInvalidConfig),
		errors.Is(err, service.ErrProviderNotConfigured):
		return http.StatusInternalServerError

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrNoImage):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for an error.
// Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusNotFound:
		return "Verse not found"
	case http.StatusConflict:
		return "Verse already exists"
	case http.StatusBadGateway:
		return "Content generation is temporarily unavailable"
	default:
		return "An internal error occurred"
	}
}

// respondError logs the real error and writes the sanitized reply.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	slog.WarnContext(r.Context(), "request failed",
		"status", status,
		"error", err,
		"path", r.URL.Path,
		"trace_id", shared.TraceID(r.Context()))
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
