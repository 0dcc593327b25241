package music

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/vibeplace/vibeplace/pkg/types"
)

// TrackDataset is an immutable, lazily-initialized provider over a CSV
// of tracks with audio features. It is loaded once on first use, is
// read-only thereafter, and reloads only on an explicit Refresh call.
// It serves as the offline taste-profile fallback when no Spotify token
// is configured.
//
// Expected CSV header:
//
//	track_name,artist,valence,energy,danceability,loudness,liveness,acousticness
type TrackDataset struct {
	path string

	mu     sync.RWMutex
	tracks []Track // nil until first load
	loaded bool
}

// NewTrackDataset creates a provider for the given CSV path. The file
// is not read until the first access.
func NewTrackDataset(path string) *TrackDataset {
	return &TrackDataset{path: path}
}

// Tracks returns the loaded track list, loading the file on first call.
// The returned slice must be treated as read-only.
func (d *TrackDataset) Tracks() ([]Track, error) {
	d.mu.RLock()
	if d.loaded {
		tracks := d.tracks
		d.mu.RUnlock()
		return tracks, nil
	}
	d.mu.RUnlock()

	return d.load()
}

// Profile computes the dataset-wide taste profile.
func (d *TrackDataset) Profile() (types.UserPreferences, error) {
	tracks, err := d.Tracks()
	if err != nil {
		return nil, err
	}
	return ProfileFromTracks(tracks), nil
}

// Refresh re-reads the CSV, replacing the dataset atomically. Callers
// holding slices from Tracks keep their old snapshot.
func (d *TrackDataset) Refresh() error {
	_, err := d.load()
	return err
}

// load parses the CSV and swaps it in under the write lock.
func (d *TrackDataset) load() ([]Track, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("music: failed to open track dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("music: failed to parse track dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("music: track dataset %s is empty", d.path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"valence", "energy", "loudness", "liveness", "acousticness"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("music: track dataset missing column %q", required)
		}
	}

	tracks := make([]Track, 0, len(records)-1)
	for _, row := range records[1:] {
		track := Track{
			Name:         field(row, col, "track_name"),
			Artist:       field(row, col, "artist"),
			Valence:      numField(row, col, "valence"),
			Energy:       numField(row, col, "energy"),
			Danceability: numField(row, col, "danceability"),
			Loudness:     numField(row, col, "loudness"),
			Liveness:     numField(row, col, "liveness"),
			Acousticness: numField(row, col, "acousticness"),
		}
		tracks = append(tracks, track)
	}

	d.mu.Lock()
	d.tracks = tracks
	d.loaded = true
	d.mu.Unlock()

	return tracks, nil
}

// field returns the named column of a row, or "" when absent.
func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// numField parses the named column as a float, treating malformed or
// absent values as 0 rather than failing the whole load.
func numField(row []string, col map[string]int, name string) float64 {
	v, err := strconv.ParseFloat(field(row, col, name), 64)
	if err != nil {
		return 0
	}
	return v
}
