package raiderio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mythic-notifier/internal/metrics"
)

const BaseURL = "https://raider.io/api/v1"

// Region is fixed: the bot only tracks characters on US realms.
const Region = "us"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: BaseURL,
	}
}

// NewTestClient creates a client with custom base URL for testing
func NewTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// GetProfile fetches a character profile including its recent mythic+ runs.
// The endpoint is public; no authentication is required.
func (c *Client) GetProfile(realm, name string) (*Profile, error) {
	u := fmt.Sprintf("%s/characters/profile?region=%s&realm=%s&name=%s&fields=mythic_plus_recent_runs",
		c.baseURL, Region, url.QueryEscape(realm), url.QueryEscape(name))

	start := time.Now()
	resp, err := c.httpClient.Get(u)
	if err != nil {
		metrics.RaiderIORequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	status := fmt.Sprintf("%d", resp.StatusCode)
	metrics.RaiderIORequestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	metrics.RaiderIORequests.WithLabelValues(status).Inc()

	// raider.io answers an unknown character or realm with 400 plus an
	// error body. That reads as "no data for this character", not a
	// transport failure: the caller delivers the could-not-find message.
	if resp.StatusCode == http.StatusBadRequest {
		return &Profile{Name: name, Realm: realm}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &profile, nil
}
