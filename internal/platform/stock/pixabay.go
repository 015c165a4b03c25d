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

const defaultPixabayBaseURL = "https://pixabay.com/api/"

// PixabayClient queries the Pixabay image search API.
type PixabayClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// pixabaySearchResponse is the subset of the search payload we consume.
type pixabaySearchResponse struct {
	Hits []struct {
		LargeImageURL string `json:"largeImageURL"`
		WebformatURL  string `json:"webformatURL"`
	} `json:"hits"`
}

// NewPixabayClient creates a Pixabay client. The API key travels as a query
// parameter, which is how Pixabay authenticates.
func NewPixabayClient(apiKey string, logger *slog.Logger) (*PixabayClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("pixabay: %w", ErrMissingAPIKey)
	}
	return &PixabayClient{
		apiKey:     apiKey,
		baseURL:    defaultPixabayBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}, nil
}

// Name implements Provider.
func (c *PixabayClient) Name() string { return "pixabay" }

// Fetch implements Provider. It searches a random nature term on a random
// page and picks a random hit, preferring the large rendition.
func (c *PixabayClient) Fetch(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", randomNatureQuery())
	params.Set("image_type", "photo")
	params.Set("orientation", "vertical")
	params.Set("safesearch", "true")
	params.Set("per_page", "3")
	params.Set("page", strconv.Itoa(rand.Intn(20)+1))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("pixabay: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pixabay: request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close pixabay response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pixabay: API error: status %d", resp.StatusCode)
	}

	var payload pixabaySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("pixabay: failed to decode response: %w", err)
	}

	if len(payload.Hits) == 0 {
		return "", fmt.Errorf("pixabay: %w", ErrNoResults)
	}

	hit := payload.Hits[rand.Intn(len(payload.Hits))]
	imageURL := hit.LargeImageURL
	if imageURL == "" {
		imageURL = hit.WebformatURL
	}
	if imageURL == "" {
		return "", fmt.Errorf("pixabay: %w", ErrNoResults)
	}

	c.logger.Debug("fetched stock image", "provider", "pixabay")
	return imageURL, nil
}
