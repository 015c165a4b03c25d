// Package gemini adapts the Google Gemini API to the generation interfaces.
// Text calls request structured JSON output against a response schema and
// are wrapped in a bounded retry loop; image calls return the picture as a
// data URL so callers can treat generated and stock imagery uniformly.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/palavradiaria/palavra-api/internal/config"
	"github.com/palavradiaria/palavra-api/internal/generation"
	"github.com/palavradiaria/palavra-api/internal/retry"
)

// Generator implements generation.VerseGenerator and
// generation.ImageGenerator using the Gemini API.
type Generator struct {
	client         *genai.Client
	modelName      string
	imageModelName string
	textPolicy     retry.Policy
	logger         *slog.Logger
}

// Ensure Generator satisfies the generation interfaces.
var (
	_ generation.VerseGenerator = (*Generator)(nil)
	_ generation.ImageGenerator = (*Generator)(nil)
)

// NewGenerator creates a Gemini-backed generator from the LLM configuration.
// It validates the configuration and establishes the API client.
func NewGenerator(ctx context.Context, cfg *config.LLMConfig, logger *slog.Logger) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", generation.ErrInvalidConfig)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModelName == "" {
		return nil, fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	policy := retry.DefaultTextPolicy
	if cfg.MaxRetries > 0 {
		policy.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelaySeconds > 0 {
		policy.InitialDelay = time.Duration(cfg.RetryDelaySeconds) * time.Second
	}

	return &Generator{
		client:         client,
		modelName:      cfg.ModelName,
		imageModelName: cfg.ImageModelName,
		textPolicy:     policy,
		logger:         logger.With("component", "gemini_generator"),
	}, nil
}

// generateText performs one structured-output text call under the retry
// policy and returns the raw response text.
func (g *Generator) generateText(
	ctx context.Context,
	systemInstruction string,
	prompt string,
	schema *genai.Schema,
	temperature float32,
) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		Temperature:       genai.Ptr(temperature),
	}

	return retry.Do(ctx, g.textPolicy, retry.IsTransient, func(ctx context.Context) (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genCfg)
		if err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}

		text := resp.Text()
		if text == "" {
			if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
				return "", fmt.Errorf("%w: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
			}
			return "", generation.ErrEmptyResponse
		}
		return text, nil
	})
}
