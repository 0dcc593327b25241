package handlers

import (
	"context"
	"net/http"

	"github.com/vibeplace/vibeplace/internal/music"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// trackSource fetches a listener's top tracks from a music service.
type trackSource interface {
	TopTracks(ctx context.Context, limit int) ([]music.Track, error)
}

// profileProvider derives preferences from a bundled track dataset.
type profileProvider interface {
	Profile() (types.UserPreferences, error)
}

// MusicHandlers serves GET /api/music/profile: slider preferences derived
// from the caller's listening history, falling back to the bundled dataset
// when no music service is connected.
type MusicHandlers struct {
	spotify trackSource
	dataset profileProvider
}

// NewMusicHandlers creates a MusicHandlers. spotify may be nil when no
// access token is configured; dataset is required.
func NewMusicHandlers(spotify trackSource, dataset profileProvider) *MusicHandlers {
	return &MusicHandlers{spotify: spotify, dataset: dataset}
}

// Profile handles GET /api/music/profile?limit=.
func (h *MusicHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	if h.spotify != nil {
		tracks, err := h.spotify.TopTracks(r.Context(), limit)
		if err == nil && len(tracks) > 0 {
			respondJSON(w, http.StatusOK, MusicProfileResponse{
				Source:      "spotify",
				Preferences: music.ProfileFromTracks(tracks),
			})
			return
		}
		// Fall through to the dataset on error or an empty listening history.
	}

	prefs, err := h.dataset.Profile()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build music profile", err)
		return
	}

	respondJSON(w, http.StatusOK, MusicProfileResponse{
		Source:      "dataset",
		Preferences: prefs,
	})
}
