package api

import (
	"log/slog"
	"net/http"

	"github.com/palavradiaria/palavra-api/internal/api/shared"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/service"
)

// SuggestionHandler serves verse suggestion listings.
type SuggestionHandler struct {
	suggestions *service.SuggestionService
	logger      *slog.Logger
}

// NewSuggestionHandler creates the handler.
func NewSuggestionHandler(suggestions *service.SuggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestions: suggestions,
		logger:      logger.With("component", "suggestion_handler"),
	}
}

// Suggest handles POST /api/suggestions. The service degrades to the static
// dictionary internally, so this endpoint only fails on bad input.
func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestionsRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	verses := h.suggestions.Suggest(r.Context(), generation.SuggestionQuery{
		Theme:   req.Theme,
		Book:    req.Book,
		Chapter: req.Chapter,
		Verse:   req.Verse,
	})

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionsResponse{Verses: verses})
}

// Random handles GET /api/verses/random.
func (h *SuggestionHandler) Random(w http.ResponseWriter, r *http.Request) {
	suggestion := h.suggestions.Random(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, suggestion)
}
