package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/generation"
)

// Sampling temperatures. Random verse requests run hotter to reduce repeats.
const (
	defaultTemperature     float32 = 1.0
	randomVerseTemperature float32 = 1.1
)

// SuggestVerses implements generation.VerseGenerator.
func (g *Generator) SuggestVerses(ctx context.Context, query generation.SuggestionQuery) ([]domain.VerseSuggestion, error) {
	raw, err := g.generateText(ctx, suggestionSystemInstruction, buildSuggestionPrompt(query), verseSuggestionsSchema, defaultTemperature)
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("generated verse suggestions", "count", len(suggestions), "theme", query.Theme, "book", query.Book)
	return suggestions, nil
}

// RandomVerse implements generation.VerseGenerator.
func (g *Generator) RandomVerse(ctx context.Context) (domain.VerseSuggestion, error) {
	raw, err := g.generateText(ctx, randomVerseSystemInstruction, buildRandomVersePrompt(rand.Int()), verseSuggestionSchema, randomVerseTemperature)
	if err != nil {
		return domain.VerseSuggestion{}, err
	}

	suggestion, err := parseSingleSuggestion(raw)
	if err != nil {
		return domain.VerseSuggestion{}, err
	}

	g.logger.Debug("generated random verse", "reference", suggestion.VerseReference)
	return suggestion, nil
}

// ExplainVerse implements generation.VerseGenerator.
func (g *Generator) ExplainVerse(ctx context.Context, verseText, verseReference string) (string, error) {
	raw, err := g.generateText(ctx, explanationSystemInstruction, buildExplanationPrompt(verseText, verseReference), explanationSchema, defaultTemperature)
	if err != nil {
		return "", err
	}

	explanation, err := parseExplanation(raw)
	if err != nil {
		return "", err
	}

	g.logger.Debug("generated verse explanation", "reference", verseReference)
	return explanation, nil
}

// parseSuggestions decodes a suggestion list answer. It accepts both the
// schema shape ({"verses": [...]}) and a bare top-level array, then
// validates every entry.
func parseSuggestions(raw string) ([]domain.VerseSuggestion, error) {
	cleaned := generation.ExtractJSON(raw)

	var wrapped struct {
		Verses []domain.VerseSuggestion `json:"verses"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
		var bare []domain.VerseSuggestion
		if bareErr := json.Unmarshal([]byte(cleaned), &bare); bareErr != nil {
			return nil, fmt.Errorf("%w: failed to parse suggestions: %v", generation.ErrInvalidResponse, err)
		}
		wrapped.Verses = bare
	}

	if len(wrapped.Verses) == 0 {
		return nil, fmt.Errorf("%w: response contains no verses", generation.ErrInvalidResponse)
	}

	for i, suggestion := range wrapped.Verses {
		if err := suggestion.Validate(); err != nil {
			return nil, fmt.Errorf("%w: suggestion %d: %v", generation.ErrInvalidResponse, i, err)
		}
	}
	return wrapped.Verses, nil
}

// parseSingleSuggestion decodes a single-suggestion answer.
func parseSingleSuggestion(raw string) (domain.VerseSuggestion, error) {
	cleaned := generation.ExtractJSON(raw)

	var suggestion domain.VerseSuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		return domain.VerseSuggestion{}, fmt.Errorf("%w: failed to parse verse: %v", generation.ErrInvalidResponse, err)
	}
	if err := suggestion.Validate(); err != nil {
		return domain.VerseSuggestion{}, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}
	return suggestion, nil
}

// parseExplanation decodes an explanation answer.
func parseExplanation(raw string) (string, error) {
	cleaned := generation.ExtractJSON(raw)

	var payload struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return "", fmt.Errorf("%w: failed to parse explanation: %v", generation.ErrInvalidResponse, err)
	}
	if payload.Explanation == "" {
		return "", fmt.Errorf("%w: explanation is empty", generation.ErrInvalidResponse)
	}
	return payload.Explanation, nil
}
