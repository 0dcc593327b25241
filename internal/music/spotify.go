// Package music derives the user taste profile from music-listening
// attributes. Profiles come from the Spotify Web API when a token is
// available, or from the bundled track dataset as an offline fallback.
package music

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Track carries the audio features used for taste profiling.
type Track struct {
	Name         string  `json:"track_name"`
	Artist       string  `json:"artist"`
	Valence      float64 `json:"valence"`
	Energy       float64 `json:"energy"`
	Danceability float64 `json:"danceability"`
	Loudness     float64 `json:"loudness"` // dB, typically -60..0
	Liveness     float64 `json:"liveness"`
	Acousticness float64 `json:"acousticness"`
}

// SpotifyConfig holds Spotify client configuration.
type SpotifyConfig struct {
	// AccessToken is the user's bearer token (user-top-read scope).
	AccessToken string

	// BaseURL is the API base (default: https://api.spotify.com/v1).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration
}

// SpotifyClient fetches the user's top tracks and their audio features.
type SpotifyClient struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewSpotifyClient creates a Spotify client with defaults applied.
func NewSpotifyClient(cfg SpotifyConfig) *SpotifyClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.spotify.com/v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SpotifyClient{
		token:   cfg.AccessToken,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type topTracksResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
	} `json:"items"`
}

type audioFeaturesResponse struct {
	AudioFeatures []struct {
		ID           string  `json:"id"`
		Valence      float64 `json:"valence"`
		Energy       float64 `json:"energy"`
		Danceability float64 `json:"danceability"`
		Loudness     float64 `json:"loudness"`
		Liveness     float64 `json:"liveness"`
		Acousticness float64 `json:"acousticness"`
	} `json:"audio_features"`
}

// TopTracks fetches the user's top tracks with audio features attached,
// up to limit (Spotify caps this at 50).
func (c *SpotifyClient) TopTracks(ctx context.Context, limit int) ([]Track, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var top topTracksResponse
	if err := c.get(ctx, fmt.Sprintf("/me/top/tracks?limit=%d", limit), &top); err != nil {
		return nil, err
	}
	if len(top.Items) == 0 {
		return []Track{}, nil
	}

	ids := make([]string, len(top.Items))
	for i, item := range top.Items {
		ids[i] = item.ID
	}

	var features audioFeaturesResponse
	path := "/audio-features?ids=" + url.QueryEscape(strings.Join(ids, ","))
	if err := c.get(ctx, path, &features); err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(features.AudioFeatures))
	for i, f := range features.AudioFeatures {
		byID[f.ID] = i
	}

	tracks := make([]Track, 0, len(top.Items))
	for _, item := range top.Items {
		track := Track{Name: item.Name}
		if len(item.Artists) > 0 {
			track.Artist = item.Artists[0].Name
		}
		if i, ok := byID[item.ID]; ok {
			f := features.AudioFeatures[i]
			track.Valence = f.Valence
			track.Energy = f.Energy
			track.Danceability = f.Danceability
			track.Loudness = f.Loudness
			track.Liveness = f.Liveness
			track.Acousticness = f.Acousticness
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// get performs an authenticated GET against the Spotify API.
func (c *SpotifyClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("music: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("music: spotify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("music: spotify returned HTTP status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("music: failed to decode spotify response: %w", err)
	}
	return nil
}
