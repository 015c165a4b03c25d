package generation

import (
	"context"

	"github.com/palavradiaria/palavra-api/internal/domain"
)

// SuggestionQuery describes what kind of verse listing the caller wants.
// All fields are optional and composable: Book+Chapter asks for a chapter
// listing (Verse narrows it as a hint), Theme asks for a themed list
// (optionally filtered by Book), and an empty query asks for a generic
// inspirational list.
type SuggestionQuery struct {
	Theme   string
	Book    string
	Chapter string
	Verse   string
}

// VerseGenerator defines the boundary between the application core and the
// generative text service.
type VerseGenerator interface {
	// SuggestVerses returns a validated list of verse suggestions for the
	// query. It returns ErrInvalidResponse when the model answer lacks the
	// expected list field.
	SuggestVerses(ctx context.Context, query SuggestionQuery) ([]domain.VerseSuggestion, error)

	// RandomVerse returns a single random verse suggestion. Requests carry
	// elevated sampling temperature and a uniqueness nonce to reduce
	// repeats across calls.
	RandomVerse(ctx context.Context) (domain.VerseSuggestion, error)

	// ExplainVerse returns a short devotional explanation for the verse.
	ExplainVerse(ctx context.Context, verseText, verseReference string) (string, error)
}

// ImageGenerator defines the boundary between the application core and the
// generative image service. The returned URL is a data URL carrying the
// generated image bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
