// Package places is the adapter for the Google Places API: nearby
// candidate search, review fetch, and autocomplete. All calls go through
// a circuit breaker and a client-side rate limiter; upstream failures
// surface as errors or empty results, never panics.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/vibeplace/vibeplace/pkg/types"
)

// Config holds Places client configuration.
type Config struct {
	// APIKey is the Google Places API key.
	APIKey string

	// BaseURL is the API base (default: https://maps.googleapis.com/maps/api/place).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// RequestsPerSecond throttles upstream calls (default: 10).
	RequestsPerSecond float64

	// Burst is the limiter burst size (default: 20).
	Burst int
}

// Client calls the Google Places API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *breaker
	limiter *rate.Limiter
}

// NewClient creates a Places client, applying defaults for unset fields.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://maps.googleapis.com/maps/api/place"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newBreaker("PlacesAPI", defaultBreakerConfig()),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// wire formats for the Places API responses we consume.

type detailsResponse struct {
	Result struct {
		Reviews []wireReview `json:"reviews"`
	} `json:"result"`
	Status string `json:"status"`
}

type wireReview struct {
	Text       string   `json:"text"`
	Rating     *float64 `json:"rating"`
	Time       int64    `json:"time"` // Unix seconds
	AuthorName string   `json:"author_name"`
}

type nearbyResponse struct {
	Results []wirePlace `json:"results"`
	Status  string      `json:"status"`
}

type wirePlace struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Vicinity string   `json:"vicinity"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type autocompleteResponse struct {
	Predictions []Prediction `json:"predictions"`
	Status      string       `json:"status"`
}

// Prediction is a single autocomplete suggestion.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// Reviews fetches the reviews for a place. A ZERO_RESULTS status or a
// details payload without a review list yields an empty slice and no
// error — callers treat both as "no review evidence."
func (c *Client) Reviews(ctx context.Context, placeID string) ([]types.Review, error) {
	params := url.Values{
		"place_id": {placeID},
		"fields":   {"reviews"},
	}

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ZERO_RESULTS" {
		return []types.Review{}, nil
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("places: details request failed with status %s", resp.Status)
	}

	reviews := make([]types.Review, 0, len(resp.Result.Reviews))
	for _, wr := range resp.Result.Reviews {
		review := types.Review{
			Text:   wr.Text,
			Time:   time.Unix(wr.Time, 0),
			Author: wr.AuthorName,
		}
		if wr.Rating != nil {
			review.Rating = *wr.Rating
			review.RatingKnown = true
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// Nearby searches for establishment candidates around a point. The
// returned places carry their haversine distance from the query point so
// the engine can apply the distance penalty without re-deriving it.
func (c *Client) Nearby(ctx context.Context, lat, lng, radiusMeters float64) ([]types.Place, error) {
	params := url.Values{
		"location": {fmt.Sprintf("%f,%f", lat, lng)},
		"radius":   {fmt.Sprintf("%f", radiusMeters)},
		"type":     {"establishment"},
	}

	var resp nearbyResponse
	if err := c.get(ctx, "/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ZERO_RESULTS" {
		return []types.Place{}, nil
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("places: nearby search failed with status %s", resp.Status)
	}

	result := make([]types.Place, 0, len(resp.Results))
	for _, wp := range resp.Results {
		result = append(result, types.Place{
			ID:      wp.PlaceID,
			Name:    wp.Name,
			Types:   wp.Types,
			Address: wp.Vicinity,
			Location: types.Location{
				Lat: wp.Geometry.Location.Lat,
				Lng: wp.Geometry.Location.Lng,
			},
			DistanceMeters: haversineMeters(lat, lng, wp.Geometry.Location.Lat, wp.Geometry.Location.Lng),
		})
	}
	return result, nil
}

// Autocomplete returns place suggestions for partial input.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	params := url.Values{"input": {input}}

	var resp autocompleteResponse
	if err := c.get(ctx, "/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ZERO_RESULTS" {
		return []Prediction{}, nil
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("places: autocomplete failed with status %s", resp.Status)
	}
	return resp.Predictions, nil
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *Client) BreakerState() string {
	return c.breaker.state()
}

// get performs a rate-limited, breaker-protected GET and decodes the
// JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("places: rate limiter: %w", err)
	}

	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	_, err := c.breaker.execute(ctx, func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("places: failed to create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("places: request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("places: unexpected HTTP status %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("places: failed to decode response: %w", err)
		}
		return nil, nil
	})
	return err
}

// haversineMeters returns the great-circle distance between two points.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusMeters = 6371000

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
