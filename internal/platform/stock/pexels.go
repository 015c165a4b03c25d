package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultPexelsBaseURL = "https://api.pexels.com/v1"

// PexelsClient queries the Pexels photo search API.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// pexelsSearchResponse is the subset of the search payload we consume.
type pexelsSearchResponse struct {
	Photos []struct {
		Src struct {
			Portrait string `json:"portrait"`
		} `json:"src"`
	} `json:"photos"`
}

// NewPexelsClient creates a Pexels client. The API key is sent as the
// Authorization header on every request.
func NewPexelsClient(apiKey string, logger *slog.Logger) (*PexelsClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("pexels: %w", ErrMissingAPIKey)
	}
	return &PexelsClient{
		apiKey:     apiKey,
		baseURL:    defaultPexelsBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}, nil
}

// Name implements Provider.
func (c *PexelsClient) Name() string { return "pexels" }

// Fetch implements Provider. It searches a random nature term on a random
// result page and returns the portrait rendition of the first photo.
func (c *PexelsClient) Fetch(ctx context.Context) (string, error) {
	return c.FetchQuery(ctx, randomNatureQuery())
}

// FetchQuery searches for the given term instead of a random one. Used by
// callers that want imagery matching a specific context.
func (c *PexelsClient) FetchQuery(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "portrait")
	params.Set("per_page", "1")
	params.Set("page", strconv.Itoa(rand.Intn(50)+1))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("pexels: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pexels: request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close pexels response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pexels: API error: status %d", resp.StatusCode)
	}

	var payload pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("pexels: failed to decode response: %w", err)
	}

	if len(payload.Photos) == 0 || payload.Photos[0].Src.Portrait == "" {
		return "", fmt.Errorf("pexels: %w", ErrNoResults)
	}

	c.logger.Debug("fetched stock image", "provider", "pexels", "query", query)
	return payload.Photos[0].Src.Portrait, nil
}
