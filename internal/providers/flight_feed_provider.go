package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
)

// FlightFeedProvider fetches raw flight events from the upstream feed
type FlightFeedProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewFlightFeedProvider creates a provider for the configured feed URL
func NewFlightFeedProvider() *FlightFeedProvider {
	baseURL := os.Getenv("FLIGHT_FEED_URL")
	if baseURL == "" {
		baseURL = "https://mock.apidog.com/m1/814105-793312-default/flight-events" // Default
	}

	return &FlightFeedProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchEvents retrieves the current batch of flight events from the feed.
// The int return is the upstream HTTP status (0 when the request never left).
func (p *FlightFeedProvider) FetchEvents(ctx context.Context) ([]dtos.RawFlightEvent, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, resp.StatusCode, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var events []dtos.RawFlightEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode feed response: %w", err)
	}

	return events, resp.StatusCode, nil
}
