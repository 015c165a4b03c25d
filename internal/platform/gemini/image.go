package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"github.com/palavradiaria/palavra-api/internal/generation"
)

// GenerateImage implements generation.ImageGenerator. Image calls run a
// single attempt each; the image service layers its own tighter retry and
// stock fallbacks on top, so retrying here would double the backoff.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.imageModelName, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	dataURL, err := extractImageDataURL(resp)
	if err != nil {
		return "", err
	}

	g.logger.Debug("generated background image", "model", g.imageModelName)
	return dataURL, nil
}

// ImagePrompt builds a randomized background-image prompt for the verse,
// exposed so the image service can construct prompts without knowing the
// prompt vocabulary.
func (g *Generator) ImagePrompt(verseText, verseReference string) string {
	return buildImagePrompt(verseText, verseReference)
}

// extractImageDataURL finds the first inline image in the response and
// encodes it as a data URL.
func extractImageDataURL(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", generation.ErrNoImage
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded), nil
			}
		}
	}
	return "", generation.ErrNoImage
}
