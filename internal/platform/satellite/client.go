// Package satellite queries a Copernicus-style product search API for
// imagery covering a point of interest.
package satellite

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

const (
	platformName = "Sentinel-2"
	maxCloudPct  = 30
)

type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Products searches for imagery products covering the given point within the
// date window. Failures are logged and swallowed: satellite data is
// best-effort enrichment, so an empty map is returned instead of an error.
func (c *Client) Products(ctx context.Context, lat, lon float64, startDate, endDate string) map[string]interface{} {
	if c.baseURL == "" {
		return map[string]interface{}{}
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("start", startDate)
	q.Set("end", endDate)
	q.Set("platformname", platformName)
	q.Set("cloudcoverpercentage", fmt.Sprintf("0,%d", maxCloudPct))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return map[string]interface{}{}
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("satellite product search failed")
		return map[string]interface{}{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("satellite product search failed")
		return map[string]interface{}{}
	}

	var products map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		log.Warn().Err(err).Msg("satellite product decode failed")
		return map[string]interface{}{}
	}
	if products == nil {
		return map[string]interface{}{}
	}
	return products
}
