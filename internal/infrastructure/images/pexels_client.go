package images

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PexelsClient queries the Pexels photo search API for place images.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPexelsClient creates a new client. The timeout bounds how long a
// cache-miss request may stall on the upstream API.
func NewPexelsClient(apiKey string) *PexelsClient {
	return &PexelsClient{
		apiKey:  apiKey,
		baseURL: "https://api.pexels.com/v1/search",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// pexelsResponse is the slice of the search payload we care about.
type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// SearchImageURL returns the large-size URL of the first photo
// matching the query. An empty result set is an error so the caller
// can fall through to its fallback URL.
func (c *PexelsClient) SearchImageURL(ctx context.Context, query string) (string, error) {
	reqURL := fmt.Sprintf("%s?query=%s&per_page=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Pexels API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Pexels API returned error status: %s", resp.Status)
	}

	var apiResp pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to parse Pexels response: %w", err)
	}

	if len(apiResp.Photos) == 0 {
		return "", errors.New("no photos matched the query")
	}

	return apiResp.Photos[0].Src.Large, nil
}
