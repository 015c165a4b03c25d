package api

import (
	"log/slog"
	"net/http"

	"github.com/palavradiaria/palavra-api/internal/api/shared"
	"github.com/palavradiaria/palavra-api/internal/service"
)

// VerseOfDayHandler serves the daily verse.
type VerseOfDayHandler struct {
	votd   *service.VerseOfDayService
	logger *slog.Logger
}

// NewVerseOfDayHandler creates the handler.
func NewVerseOfDayHandler(votd *service.VerseOfDayService, logger *slog.Logger) *VerseOfDayHandler {
	return &VerseOfDayHandler{
		votd:   votd,
		logger: logger.With("component", "verse_of_day_handler"),
	}
}

// Today handles GET /api/verse-of-the-day.
func (h *VerseOfDayHandler) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.votd.Today(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Refresh handles POST /api/verse-of-the-day/refresh.
func (h *VerseOfDayHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.votd.Refresh(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
