// Package geo wraps the Nominatim geocoding API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a Nominatim client. baseURL may be empty to use the
// public instance. A single attempt is made per call, no retries.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a place name to coordinates. The first result wins.
func (c *Client) Geocode(ctx context.Context, name string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")

	var results []searchResult
	if err := c.get(ctx, "/search", q, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no results for %q", name)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse lat: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse lon: %w", err)
	}
	return lat, lon, nil
}

// ReverseGeocode resolves coordinates to a display name. On any failure it
// falls back to the raw "lat, lon" string rather than erroring, since the
// display name is cosmetic.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := FormatCoords(lat, lon)

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "json")

	var result searchResult
	if err := c.get(ctx, "/reverse", q, &result); err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("reverse geocoding failed")
		return fallback
	}
	if result.DisplayName == "" {
		return fallback
	}
	return result.DisplayName
}

// FormatCoords renders coordinates the way reverse geocoding falls back to.
func FormatCoords(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "telecare/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
