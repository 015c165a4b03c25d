package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/fallback"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/store"
)

// votdStockQuery is the search used for the dynamic image fallback of the
// verse of the day.
const votdStockQuery = "peaceful nature landscape"

// QueryFetcher fetches a stock image for a specific search term. Satisfied
// by the Pexels client.
type QueryFetcher interface {
	FetchQuery(ctx context.Context, query string) (string, error)
}

// VerseOfDayService serves the daily verse. One verse is generated per local
// calendar day and cached; subsequent requests that day make zero network
// calls. The verse of the day is not added to the gallery; the user saves
// it explicitly if they want it there.
type VerseOfDayService struct {
	verses generation.VerseGenerator
	images *ImageService
	cache  store.VerseOfDayStore

	// stockSearch is the dynamic image fallback; may be nil.
	stockSearch QueryFetcher

	logger *slog.Logger

	// now is injectable for tests.
	now func() time.Time
}

// NewVerseOfDayService creates the verse-of-the-day service. stockSearch may
// be nil, in which case image failures fall straight to the static list.
func NewVerseOfDayService(
	verses generation.VerseGenerator,
	images *ImageService,
	cache store.VerseOfDayStore,
	stockSearch QueryFetcher,
	logger *slog.Logger,
) *VerseOfDayService {
	return &VerseOfDayService{
		verses:      verses,
		images:      images,
		cache:       cache,
		stockSearch: stockSearch,
		logger:      logger.With("component", "verse_of_day_service"),
		now:         time.Now,
	}
}

// today returns the local calendar date as YYYY-MM-DD. The boundary is the
// server's local midnight, matching the daily rhythm users expect.
func (s *VerseOfDayService) today() string {
	return s.now().Format(time.DateOnly)
}

// Today returns the verse of the day, generating and caching it on first
// request each day. A cached entry is only honored when it is from today AND
// carries an image; a partial entry is regenerated.
func (s *VerseOfDayService) Today(ctx context.Context) (*domain.VerseResult, error) {
	today := s.today()

	entry, err := s.cache.LoadVerseOfDay(ctx)
	if err == nil && entry.Date == today && entry.Verse.ImageURL != "" {
		s.logger.Debug("serving cached verse of the day", "date", today)
		return &entry.Verse, nil
	}
	if err != nil && !store.IsNotFoundError(err) {
		s.logger.Warn("failed to load verse of the day cache, regenerating", "error", err)
	}

	return s.generate(ctx, today)
}

// Refresh discards the cached entry and generates a new verse of the day.
func (s *VerseOfDayService) Refresh(ctx context.Context) (*domain.VerseResult, error) {
	if err := s.cache.ClearVerseOfDay(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear verse of the day: %w", err)
	}
	return s.generate(ctx, s.today())
}

// generate runs the full pipeline: random verse, then explanation and image
// concurrently, with per-step degradation. A total verse failure yields a
// static fallback verse with a fresh identity, which is still cached so the
// day stays stable.
func (s *VerseOfDayService) generate(ctx context.Context, today string) (*domain.VerseResult, error) {
	suggestion, err := s.verses.RandomVerse(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.logger.Warn("random verse failed, using static fallback verse", "error", err)
		verse := fallback.RandomCompleteVerse()
		s.saveCache(ctx, verse, today)
		return &verse, nil
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
		imageURL = s.generateImage(gctx, suggestion)
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

	s.saveCache(ctx, *result, today)
	s.logger.Info("generated verse of the day", "date", today, "reference", result.VerseReference)
	return result, nil
}

// generateImage runs the image chain for the daily verse: the standard auto
// pipeline, then a themed stock search, then the static list. It always
// produces a URL.
func (s *VerseOfDayService) generateImage(ctx context.Context, suggestion domain.VerseSuggestion) string {
	url, err := s.images.Generate(ctx, ImageRequest{
		VerseText:      suggestion.VerseText,
		VerseReference: suggestion.VerseReference,
		Source:         domain.ImageSourceAuto,
	})
	if err == nil {
		return url
	}
	s.logger.Warn("verse of the day image pipeline failed", "error", err)

	if s.stockSearch != nil && ctx.Err() == nil {
		url, err = s.stockSearch.FetchQuery(ctx, votdStockQuery)
		if err == nil {
			return url
		}
		s.logger.Warn("verse of the day stock search failed", "error", err)
	}

	return fallback.RandomImage()
}

// saveCache persists the daily entry. Cache write failures are logged, not
// returned: the user already has their verse.
func (s *VerseOfDayService) saveCache(ctx context.Context, verse domain.VerseResult, today string) {
	entry := domain.VerseOfDayEntry{Verse: verse, Date: today}
	if err := s.cache.SaveVerseOfDay(ctx, entry); err != nil {
		s.logger.Warn("failed to cache verse of the day", "error", err)
	}
}
