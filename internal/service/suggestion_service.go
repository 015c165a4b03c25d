package service

import (
	"context"
	"log/slog"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/fallback"
	"github.com/palavradiaria/palavra-api/internal/generation"
)

// SuggestionService lists verse suggestions, degrading to the static
// dictionary when the generative backend is unavailable. Suggestion listing
// never fails: a user typing a theme always gets verses back.
type SuggestionService struct {
	verses generation.VerseGenerator
	logger *slog.Logger
}

// NewSuggestionService creates a suggestion service.
func NewSuggestionService(verses generation.VerseGenerator, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{
		verses: verses,
		logger: logger.With("component", "suggestion_service"),
	}
}

// Suggest returns suggestions for the query. On any generation failure it
// answers from the fallback dictionary using the query theme, so the result
// stays on-topic for known themes and generic otherwise.
func (s *SuggestionService) Suggest(ctx context.Context, query generation.SuggestionQuery) []domain.VerseSuggestion {
	suggestions, err := s.verses.SuggestVerses(ctx, query)
	if err != nil {
		s.logger.Warn("verse suggestion failed, using fallback dictionary", "theme", query.Theme, "error", err)
		return fallback.SuggestionsForTheme(query.Theme)
	}
	return suggestions
}

// Random returns a single random verse suggestion. On failure it draws from
// the fallback dictionary instead of erroring, matching the suggestion path.
func (s *SuggestionService) Random(ctx context.Context) domain.VerseSuggestion {
	suggestion, err := s.verses.RandomVerse(ctx)
	if err != nil {
		s.logger.Warn("random verse failed, using fallback dictionary", "error", err)
		return fallback.SuggestionsForTheme("")[0]
	}
	return suggestion
}
