package nyt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is the NYT Wordle metadata client. The endpoint is public and
// keyed by calendar day.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new NYT client.
func NewClient() Client {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    "https://www.nytimes.com",
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// GetMetadata fetches puzzle metadata for the given day.
func (c *APIClient) GetMetadata(ctx context.Context, day time.Time) (Metadata, error) {
	url := fmt.Sprintf("%s/svc/wordle/v2/%s.json", c.BaseURL, day.Format(time.DateOnly))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "wordle-tally/1.0")

	log.Debug("Requesting puzzle metadata", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from NYT", "status", resp.StatusCode, "body", string(body))
		return Metadata{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return meta, nil
}
