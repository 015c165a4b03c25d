package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/palavradiaria/palavra-api/internal/domain"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/platform/stock"
	"github.com/palavradiaria/palavra-api/internal/retry"
)

// ErrProviderNotConfigured is returned when a request names a stock provider
// that has no API key configured.
var ErrProviderNotConfigured = errors.New("image provider not configured")

// BackgroundImager generates background images and the prompts that drive
// them. Satisfied by the Gemini adapter.
type BackgroundImager interface {
	generation.ImageGenerator

	// ImagePrompt builds a randomized background prompt for the verse.
	ImagePrompt(verseText, verseReference string) string
}

// ImageRequest describes one background image to produce.
type ImageRequest struct {
	VerseText      string
	VerseReference string

	// Source selects the pipeline; empty defaults to auto.
	Source domain.ImageSource

	// Prompt overrides the generated prompt for the auto source.
	Prompt string
}

// ImageService produces card background images. The auto source tries the
// generative model first and falls through the stock providers; stock-only
// sources call exactly that provider under the retry policy.
type ImageService struct {
	imager  BackgroundImager
	pexels  stock.Provider
	pixabay stock.Provider
	policy  retry.Policy
	logger  *slog.Logger
}

// NewImageService creates the image pipeline. Either stock provider may be
// nil, in which case it is skipped in the auto chain and requesting it
// directly fails with ErrProviderNotConfigured.
func NewImageService(imager BackgroundImager, pexels, pixabay stock.Provider, logger *slog.Logger) *ImageService {
	return &ImageService{
		imager:  imager,
		pexels:  pexels,
		pixabay: pixabay,
		policy:  retry.DefaultImagePolicy,
		logger:  logger.With("component", "image_service"),
	}
}

// Generate produces one image URL for the request. For the auto source the
// error returned after a fully failed chain is the ORIGINAL generative
// error, not the stock providers': the root cause is what the caller needs
// to see.
func (s *ImageService) Generate(ctx context.Context, req ImageRequest) (string, error) {
	source := req.Source
	if source == "" {
		source = domain.ImageSourceAuto
	}
	if err := source.Validate(); err != nil {
		return "", err
	}

	switch source {
	case domain.ImageSourcePexels:
		return s.fetchStock(ctx, s.pexels, "pexels")
	case domain.ImageSourcePixabay:
		return s.fetchStock(ctx, s.pixabay, "pixabay")
	default:
		return s.generateAuto(ctx, req)
	}
}

// fetchStock calls a single stock provider under the retry policy.
func (s *ImageService) fetchStock(ctx context.Context, provider stock.Provider, name string) (string, error) {
	if provider == nil {
		return "", fmt.Errorf("%s: %w", name, ErrProviderNotConfigured)
	}
	return retry.Do(ctx, s.policy, retry.IsTransient, provider.Fetch)
}

// generateAuto runs the generative call with retries, then falls through the
// stock providers in order. Stock attempts are single-shot: by this point
// the user has already waited through the generative backoff.
func (s *ImageService) generateAuto(ctx context.Context, req ImageRequest) (string, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = s.imager.ImagePrompt(req.VerseText, req.VerseReference)
	}

	url, rootErr := retry.Do(ctx, s.policy, retry.IsTransient, func(ctx context.Context) (string, error) {
		return s.imager.GenerateImage(ctx, prompt)
	})
	if rootErr == nil {
		return url, nil
	}
	if ctx.Err() != nil {
		return "", rootErr
	}
	s.logger.Warn("generative image failed, trying stock providers", "error", rootErr)

	for _, provider := range []stock.Provider{s.pexels, s.pixabay} {
		if provider == nil {
			continue
		}
		url, err := provider.Fetch(ctx)
		if err == nil {
			s.logger.Info("stock fallback produced image", "provider", provider.Name())
			return url, nil
		}
		s.logger.Warn("stock fallback failed", "provider", provider.Name(), "error", err)
	}

	return "", rootErr
}
