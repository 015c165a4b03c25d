package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/service"
	"github.com/palavradiaria/palavra-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type stubGenerator struct{}

func (stubGenerator) SuggestVerses(ctx context.Context, query generation.SuggestionQuery) ([]domain.VerseSuggestion, error) {
	return []domain.VerseSuggestion{
		{VerseText: "Versículo sobre " + query.Theme, VerseReference: "Salmos 1:1"},
	}, nil
}

func (stubGenerator) RandomVerse(ctx context.Context) (domain.VerseSuggestion, error) {
	return domain.VerseSuggestion{VerseText: "Aleatório", VerseReference: "Salmos 2:2"}, nil
}

func (stubGenerator) ExplainVerse(ctx context.Context, verseText, verseReference string) (string, error) {
	return "Uma explicação.", nil
}

type stubImager struct{}

func (stubImager) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "data:image/png;base64,abc", nil
}

func (stubImager) ImagePrompt(verseText, verseReference string) string { return "prompt" }

type memGallery struct {
	mu    sync.Mutex
	items []domain.VerseResult
}

func (m *memGallery) List(ctx context.Context) ([]domain.VerseResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.VerseResult, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memGallery) Get(ctx context.Context, id string) (*domain.VerseResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, store.ErrVerseNotFound
}

func (m *memGallery) Add(ctx context.Context, result domain.VerseResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]domain.VerseResult{result}, m.items...)
	return nil
}

func (m *memGallery) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrVerseNotFound
}

func (m *memGallery) SetFavorite(ctx context.Context, id string, favorite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].IsFavorite = favorite
			return nil
		}
	}
	return store.ErrVerseNotFound
}

func (m *memGallery) ReplaceImage(ctx context.Context, id string, imageURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].ImageURL = imageURL
			return nil
		}
	}
	return store.ErrVerseNotFound
}

type memVotd struct {
	mu    sync.Mutex
	entry *domain.VerseOfDayEntry
}

func (m *memVotd) LoadVerseOfDay(ctx context.Context) (*domain.VerseOfDayEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entry == nil {
		return nil, store.ErrNotFound
	}
	entry := *m.entry
	return &entry, nil
}

func (m *memVotd) SaveVerseOfDay(ctx context.Context, entry domain.VerseOfDayEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = &entry
	return nil
}

func (m *memVotd) ClearVerseOfDay(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = nil
	return nil
}

func newTestRouter(t *testing.T) (chi.Router, *memGallery) {
	t.Helper()
	logger := testLogger()
	gallery := &memGallery{}

	images := service.NewImageService(stubImager{}, nil, nil, logger)
	suggestions := service.NewSuggestionService(stubGenerator{}, logger)
	cards := service.NewCardService(stubGenerator{}, images, gallery, logger)
	votd := service.NewVerseOfDayService(stubGenerator{}, images, &memVotd{}, nil, logger)

	suggestionHandler := NewSuggestionHandler(suggestions, logger)
	cardHandler := NewCardHandler(cards, logger)
	votdHandler := NewVerseOfDayHandler(votd, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/suggestions", suggestionHandler.Suggest)
		r.Get("/verses/random", suggestionHandler.Random)
		r.Post("/cards", cardHandler.Create)
		r.Get("/cards", cardHandler.List)
		r.Route("/cards/{id}", func(r chi.Router) {
			r.Patch("/favorite", cardHandler.SetFavorite)
			r.Post("/image", cardHandler.RegenerateImage)
			r.Delete("/", cardHandler.Delete)
			r.Get("/caption", cardHandler.Caption)
		})
		r.Get("/verse-of-the-day", votdHandler.Today)
		r.Post("/verse-of-the-day/refresh", votdHandler.Refresh)
	})
	return r, gallery
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSuggestEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/suggestions", SuggestionsRequest{Theme: "paz"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Verses, 1)
	assert.Contains(t, resp.Verses[0].VerseText, "paz")
}

func TestSuggestEndpointMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRandomVerseEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/verses/random", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var suggestion domain.VerseSuggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	assert.Equal(t, "Salmos 2:2", suggestion.VerseReference)
}

func TestCreateCardEndpoint(t *testing.T) {
	router, gallery := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cards", CreateCardRequest{
		VerseText:      "Tudo posso.",
		VerseReference: "Filipenses 4:13",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["id"])
	assert.Equal(t, "Tudo posso.", payload["verseText"])
	assert.NotEmpty(t, payload["imageUrl"])
	assert.NotZero(t, payload["createdAt"], "timestamps travel as Unix millis")

	saved, err := gallery.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestCreateCardEndpointValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cards", CreateCardRequest{VerseText: "sem referência"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/cards", map[string]string{
		"verseText":      "A",
		"verseReference": "B 1:1",
		"imageSource":    "unsplash",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCardsEndpoint(t *testing.T) {
	router, gallery := newTestRouter(t)
	require.NoError(t, gallery.Add(context.Background(), domain.VerseResult{
		ID: "card-1", VerseText: "A", VerseReference: "B 1:1",
	}))

	rec := doJSON(t, router, http.MethodGet, "/api/cards", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var results []domain.VerseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "card-1", results[0].ID)
}

func TestFavoriteEndpoint(t *testing.T) {
	router, gallery := newTestRouter(t)
	require.NoError(t, gallery.Add(context.Background(), domain.VerseResult{
		ID: "card-1", VerseText: "A", VerseReference: "B 1:1",
	}))

	rec := doJSON(t, router, http.MethodPatch, "/api/cards/card-1/favorite", FavoriteRequest{IsFavorite: true})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	card, err := gallery.Get(context.Background(), "card-1")
	require.NoError(t, err)
	assert.True(t, card.IsFavorite)

	rec = doJSON(t, router, http.MethodPatch, "/api/cards/missing/favorite", FavoriteRequest{IsFavorite: true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCardEndpoint(t *testing.T) {
	router, gallery := newTestRouter(t)
	require.NoError(t, gallery.Add(context.Background(), domain.VerseResult{
		ID: "card-1", VerseText: "A", VerseReference: "B 1:1",
	}))

	rec := doJSON(t, router, http.MethodDelete, "/api/cards/card-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/cards/card-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegenerateImageEndpoint(t *testing.T) {
	router, gallery := newTestRouter(t)
	require.NoError(t, gallery.Add(context.Background(), domain.VerseResult{
		ID: "card-1", VerseText: "A", VerseReference: "B 1:1", ImageURL: "https://old.example/img.jpg",
	}))

	rec := doJSON(t, router, http.MethodPost, "/api/cards/card-1/image", RegenerateImageRequest{})

	require.Equal(t, http.StatusOK, rec.Code)
	card, err := gallery.Get(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", card.ImageURL)
}

func TestCaptionEndpoint(t *testing.T) {
	router, gallery := newTestRouter(t)
	require.NoError(t, gallery.Add(context.Background(), domain.VerseResult{
		ID: "card-1", VerseText: "Tudo posso.", VerseReference: "Filipenses 4:13",
	}))

	rec := doJSON(t, router, http.MethodGet, "/api/cards/card-1/caption", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CaptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Caption, "Filipenses 4:13")
}

func TestVerseOfDayEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/verse-of-the-day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var first domain.VerseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.NotEmpty(t, first.ImageURL)

	rec = doJSON(t, router, http.MethodGet, "/api/verse-of-the-day", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var second domain.VerseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.ID, second.ID, "same-day requests serve the cached verse")

	rec = doJSON(t, router, http.MethodPost, "/api/verse-of-the-day/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var refreshed domain.VerseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refreshed))
	assert.NotEqual(t, first.ID, refreshed.ID)
}
