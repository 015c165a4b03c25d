package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavradiaria/palavra-api/internal/domain"
)

func TestImageServiceAutoSuccess(t *testing.T) {
	imager := &fakeImager{generateFn: func(ctx context.Context, prompt string) (string, error) {
		return "data:image/png;base64,abc", nil
	}}
	pexels := &fakeProvider{name: "pexels"}
	svc := NewImageService(imager, pexels, nil, testLogger())

	url, err := svc.Generate(context.Background(), ImageRequest{
		VerseText:      "Tudo posso.",
		VerseReference: "Filipenses 4:13",
	})

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", url)
	assert.Equal(t, 0, pexels.calls, "stock providers must not be called when generation succeeds")
	assert.Contains(t, imager.lastPrompt, "Filipenses 4:13")
}

func TestImageServiceAutoFallsThroughToStock(t *testing.T) {
	imager := &fakeImager{}
	pexels := &fakeProvider{name: "pexels"}
	pixabay := &fakeProvider{name: "pixabay", fetchFn: func(ctx context.Context) (string, error) {
		return "https://pixabay.com/p.jpg", nil
	}}
	svc := NewImageService(imager, pexels, pixabay, testLogger())

	url, err := svc.Generate(context.Background(), ImageRequest{VerseText: "A", VerseReference: "B 1:1"})

	require.NoError(t, err)
	assert.Equal(t, "https://pixabay.com/p.jpg", url)
	assert.Equal(t, 1, pexels.calls)
	assert.Equal(t, 1, pixabay.calls)
}

func TestImageServiceAutoPreservesRootError(t *testing.T) {
	imager := &fakeImager{}
	pexels := &fakeProvider{name: "pexels"}
	pixabay := &fakeProvider{name: "pixabay"}
	svc := NewImageService(imager, pexels, pixabay, testLogger())

	_, err := svc.Generate(context.Background(), ImageRequest{VerseText: "A", VerseReference: "B 1:1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errPermanent, "the generative error must survive the failed stock chain")
	assert.Equal(t, 1, pexels.calls)
	assert.Equal(t, 1, pixabay.calls)
}

func TestImageServiceAutoSkipsNilProviders(t *testing.T) {
	imager := &fakeImager{}
	svc := NewImageService(imager, nil, nil, testLogger())

	_, err := svc.Generate(context.Background(), ImageRequest{VerseText: "A", VerseReference: "B 1:1"})

	assert.ErrorIs(t, err, errPermanent)
}

func TestImageServiceExplicitProvider(t *testing.T) {
	imager := &fakeImager{}
	pexels := &fakeProvider{name: "pexels", fetchFn: func(ctx context.Context) (string, error) {
		return "https://pexels.com/p.jpg", nil
	}}
	svc := NewImageService(imager, pexels, nil, testLogger())

	url, err := svc.Generate(context.Background(), ImageRequest{Source: domain.ImageSourcePexels})

	require.NoError(t, err)
	assert.Equal(t, "https://pexels.com/p.jpg", url)
	assert.Equal(t, 0, imager.generateCalls, "explicit stock sources must not touch the generator")
}

func TestImageServiceExplicitProviderNotConfigured(t *testing.T) {
	svc := NewImageService(&fakeImager{}, nil, nil, testLogger())

	_, err := svc.Generate(context.Background(), ImageRequest{Source: domain.ImageSourcePixabay})

	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestImageServiceInvalidSource(t *testing.T) {
	svc := NewImageService(&fakeImager{}, nil, nil, testLogger())

	_, err := svc.Generate(context.Background(), ImageRequest{Source: domain.ImageSource("unsplash")})

	assert.ErrorIs(t, err, domain.ErrInvalidImageSource)
}

func TestImageServiceCustomPromptOverride(t *testing.T) {
	imager := &fakeImager{generateFn: func(ctx context.Context, prompt string) (string, error) {
		return "data:image/png;base64,xyz", nil
	}}
	svc := NewImageService(imager, nil, nil, testLogger())

	_, err := svc.Generate(context.Background(), ImageRequest{
		VerseText:      "A",
		VerseReference: "B 1:1",
		Prompt:         "montanhas ao amanhecer",
	})

	require.NoError(t, err)
	assert.Equal(t, "montanhas ao amanhecer", imager.lastPrompt)
}
