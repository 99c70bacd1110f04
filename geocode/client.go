package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hfxtransit/assistant/config"
)

// Nominatim asks API users to identify themselves.
const userAgent = "transit_locator"

// Client resolves coordinates to street addresses via a Nominatim-compatible
// reverse-geocoding endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a reverse-geocoding client for the configured endpoint
func NewClient(cfg config.GeocodeConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.URL,
	}
}

// Reverse converts a coordinate into a human-readable address. An empty
// string with a nil error means the point resolved to no known place.
func (c *Client) Reverse(lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.baseURL)
	}

	var body struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode reverse-geocode response: %w", err)
	}
	return body.DisplayName, nil
}
