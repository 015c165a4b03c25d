package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/palavradiaria/palavra-api/internal/api/shared"
	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/service"
)

// CardHandler serves the card gallery and the card generation pipeline.
type CardHandler struct {
	cards  *service.CardService
	logger *slog.Logger
}

// NewCardHandler creates the handler.
func NewCardHandler(cards *service.CardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cards:  cards,
		logger: logger.With("component", "card_handler"),
	}
}

// Create handles POST /api/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.cards.GenerateCard(r.Context(), domain.VerseSuggestion{
		VerseText:      req.VerseText,
		VerseReference: req.VerseReference,
	}, domain.ImageSource(req.ImageSource))
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// List handles GET /api/cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.cards.Gallery(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, results)
}

// SetFavorite handles PATCH /api/cards/{id}/favorite.
func (h *CardHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.cards.SetFavorite(r.Context(), id, req.IsFavorite); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegenerateImage handles POST /api/cards/{id}/image.
func (h *CardHandler) RegenerateImage(w http.ResponseWriter, r *http.Request) {
	var req RegenerateImageRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.cards.RegenerateImage(r.Context(), id, domain.ImageSource(req.ImageSource), req.Prompt)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.cards.DeleteCard(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Caption handles GET /api/cards/{id}/caption.
func (h *CardHandler) Caption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	card, err := h.cards.GetCard(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CaptionResponse{Caption: service.ShareCaption(*card)})
}
