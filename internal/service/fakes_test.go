package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// errPermanent does not match any transient marker, so retry loops return it
// immediately and tests never sleep.
var errPermanent = errors.New("backend exploded")

type fakeVerseGenerator struct {
	suggestFn func(ctx context.Context, query generation.SuggestionQuery) ([]domain.VerseSuggestion, error)
	randomFn  func(ctx context.Context) (domain.VerseSuggestion, error)
	explainFn func(ctx context.Context, verseText, verseReference string) (string, error)

	mu           sync.Mutex
	suggestCalls int
	randomCalls  int
	explainCalls int
}

func (f *fakeVerseGenerator) SuggestVerses(ctx context.Context, query generation.SuggestionQuery) ([]domain.VerseSuggestion, error) {
	f.mu.Lock()
	f.suggestCalls++
	f.mu.Unlock()
	if f.suggestFn == nil {
		return nil, errPermanent
	}
	return f.suggestFn(ctx, query)
}

func (f *fakeVerseGenerator) RandomVerse(ctx context.Context) (domain.VerseSuggestion, error) {
	f.mu.Lock()
	f.randomCalls++
	f.mu.Unlock()
	if f.randomFn == nil {
		return domain.VerseSuggestion{}, errPermanent
	}
	return f.randomFn(ctx)
}

func (f *fakeVerseGenerator) ExplainVerse(ctx context.Context, verseText, verseReference string) (string, error) {
	f.mu.Lock()
	f.explainCalls++
	f.mu.Unlock()
	if f.explainFn == nil {
		return "", errPermanent
	}
	return f.explainFn(ctx, verseText, verseReference)
}

type fakeImager struct {
	generateFn func(ctx context.Context, prompt string) (string, error)

	mu            sync.Mutex
	generateCalls int
	lastPrompt    string
}

func (f *fakeImager) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.generateCalls++
	f.lastPrompt = prompt
	f.mu.Unlock()
	if f.generateFn == nil {
		return "", errPermanent
	}
	return f.generateFn(ctx, prompt)
}

func (f *fakeImager) ImagePrompt(verseText, verseReference string) string {
	return "imagem para " + verseReference
}

type fakeProvider struct {
	name    string
	fetchFn func(ctx context.Context) (string, error)

	mu    sync.Mutex
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Fetch(ctx context.Context) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fetchFn == nil {
		return "", errPermanent
	}
	return f.fetchFn(ctx)
}

// memGallery is an in-memory store.GalleryStore with prepend semantics.
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

// memVotd is an in-memory store.VerseOfDayStore that counts loads.
type memVotd struct {
	mu        sync.Mutex
	entry     *domain.VerseOfDayEntry
	loadCalls int
	saveCalls int
}

func (m *memVotd) LoadVerseOfDay(ctx context.Context) (*domain.VerseOfDayEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls++
	if m.entry == nil {
		return nil, store.ErrNotFound
	}
	entry := *m.entry
	return &entry, nil
}

func (m *memVotd) SaveVerseOfDay(ctx context.Context, entry domain.VerseOfDayEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	m.entry = &entry
	return nil
}

func (m *memVotd) ClearVerseOfDay(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = nil
	return nil
}
