package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/fallback"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/store"
)

// explanationFallbackFormat is the deterministic explanation used when the
// generative call fails; the reference keeps it verse-specific.
const explanationFallbackFormat = "Este versículo nos convida a refletir sobre a profundidade da fé e o amor divino presente em nossas vidas através da palavra. (%s)"

// CardService assembles verse cards: explanation and image are produced
// concurrently, degraded individually on failure, and the finished card is
// prepended to the gallery.
type CardService struct {
	verses  generation.VerseGenerator
	images  *ImageService
	gallery store.GalleryStore
	logger  *slog.Logger
}

// NewCardService creates a card service.
func NewCardService(verses generation.VerseGenerator, images *ImageService, gallery store.GalleryStore, logger *slog.Logger) *CardService {
	return &CardService{
		verses:  verses,
		images:  images,
		gallery: gallery,
		logger:  logger.With("component", "card_service"),
	}
}

// GenerateCard builds a card for the chosen suggestion and persists it.
// Explanation failures substitute the templated fallback and image failures
// the static image list, so a card is always produced; only persistence or
// cancellation surface as errors. A new generation never cancels a previous
// one: each call is independent and stale results are simply unused.
func (s *CardService) GenerateCard(ctx context.Context, suggestion domain.VerseSuggestion, source domain.ImageSource) (*domain.VerseResult, error) {
	if err := suggestion.Validate(); err != nil {
		return nil, err
	}
	if source == "" {
		source = domain.ImageSourceAuto
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}

	var explanation, imageURL string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.verses.ExplainVerse(gctx, suggestion.VerseText, suggestion.VerseReference)
		if err != nil {
			s.logger.Warn("explanation failed, using fallback text", "reference", suggestion.VerseReference, "error", err)
			text = fmt.Sprintf(explanationFallbackFormat, suggestion.VerseReference)
		}
		explanation = text
		return nil
	})
	g.Go(func() error {
		url, err := s.images.Generate(gctx, ImageRequest{
			VerseText:      suggestion.VerseText,
			VerseReference: suggestion.VerseReference,
			Source:         source,
		})
		if err != nil {
			s.logger.Warn("image pipeline failed, using static image", "reference", suggestion.VerseReference, "error", err)
			url = fallback.RandomImage()
		}
		imageURL = url
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := domain.NewVerseResult(suggestion, explanation, imageURL)
	if err != nil {
		return nil, err
	}
	if err := s.gallery.Add(ctx, *result); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.logger.Info("generated card", "id", result.ID, "reference", result.VerseReference, "source", source)
	return result, nil
}

// RegenerateImage replaces the image of an existing card, optionally with a
// caller-supplied prompt for the auto source.
func (s *CardService) RegenerateImage(ctx context.Context, id string, source domain.ImageSource, prompt string) (*domain.VerseResult, error) {
	card, err := s.gallery.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.images.Generate(ctx, ImageRequest{
		VerseText:      card.VerseText,
		VerseReference: card.VerseReference,
		Source:         source,
		Prompt:         prompt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.gallery.ReplaceImage(ctx, id, url); err != nil {
		return nil, err
	}
	card.ImageURL = url
	s.logger.Info("replaced card image", "id", id)
	return card, nil
}

// Gallery returns every saved card, newest first.
func (s *CardService) Gallery(ctx context.Context) ([]domain.VerseResult, error) {
	return s.gallery.List(ctx)
}

// GetCard returns one saved card by ID.
func (s *CardService) GetCard(ctx context.Context, id string) (*domain.VerseResult, error) {
	return s.gallery.Get(ctx, id)
}

// DeleteCard removes a card from the gallery.
func (s *CardService) DeleteCard(ctx context.Context, id string) error {
	return s.gallery.Remove(ctx, id)
}

// SetFavorite toggles a card's favorite flag.
func (s *CardService) SetFavorite(ctx context.Context, id string, favorite bool) error {
	return s.gallery.SetFavorite(ctx, id, favorite)
}
