package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vibeplace/vibeplace/internal/engine"
	"github.com/vibeplace/vibeplace/internal/textanalysis"
	"github.com/vibeplace/vibeplace/internal/vectorizer"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// placeSearcher finds candidate places around a location.
type placeSearcher interface {
	Nearby(ctx context.Context, lat, lng, radiusMeters float64) ([]types.Place, error)
}

// progressBroadcaster pushes per-place scoring progress to listeners.
type progressBroadcaster interface {
	BroadcastProgress(requestID string, event engine.ProgressEvent)
}

// RecommendHandlers serves POST /api/recommendations.
//
// An Engine instance is built per request: the exploration noise source is
// not safe for concurrent use, and building one is cheap.
type RecommendHandlers struct {
	reviews  engine.ReviewSource
	searcher placeSearcher
	analyzer *textanalysis.Analyzer
	builder  *vectorizer.Builder
	config   engine.Config
	hub      progressBroadcaster

	// seed produces the noise seed for each request. Overridable in tests.
	seed func() int64
}

// NewRecommendHandlers creates a RecommendHandlers. searcher and hub may be
// nil; without a searcher, requests must carry explicit places.
func NewRecommendHandlers(reviews engine.ReviewSource, searcher placeSearcher, cfg engine.Config, hub progressBroadcaster) *RecommendHandlers {
	analyzer := textanalysis.New()
	return &RecommendHandlers{
		reviews:  reviews,
		searcher: searcher,
		analyzer: analyzer,
		builder:  vectorizer.New(analyzer),
		config:   cfg,
		hub:      hub,
		seed:     func() int64 { return time.Now().UnixNano() },
	}
}

// Recommend handles POST /api/recommendations.
func (h *RecommendHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse request body", err)
		return
	}

	if len(req.Preferences) == 0 {
		respondError(w, http.StatusBadRequest, "preferences are required", nil)
		return
	}

	places := req.Places
	if len(places) == 0 {
		if req.Location == nil || h.searcher == nil {
			respondError(w, http.StatusBadRequest, "places or location are required", nil)
			return
		}
		radius := req.RadiusMeters
		if radius <= 0 {
			radius = h.config.DefaultRadiusMeters
		}
		var err error
		places, err = h.searcher.Nearby(r.Context(), req.Location.Lat, req.Location.Lng, radius)
		if err != nil {
			respondError(w, http.StatusBadGateway, "failed to search nearby places", err)
			return
		}
	}

	requestID := uuid.New().String()

	eng := engine.New(h.reviews, h.analyzer, h.builder,
		rand.New(rand.NewSource(h.seed())), h.config)
	if h.hub != nil {
		eng.SetProgressFunc(func(event engine.ProgressEvent) {
			h.hub.BroadcastProgress(requestID, event)
		})
	}

	result, err := eng.Recommend(r.Context(), engine.Request{
		Preferences:  req.Preferences,
		Places:       places,
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrMissingPreferences), errors.Is(err, engine.ErrMissingPlaces):
			respondError(w, http.StatusBadRequest, "invalid recommendation request", err)
		default:
			respondError(w, http.StatusInternalServerError, "failed to compute recommendations", err)
		}
		return
	}

	result.Summary.RequestID = requestID
	respondJSON(w, http.StatusOK, RecommendResponse{
		RequestID:       requestID,
		Recommendations: result.Recommendations,
		Summary:         result.Summary,
	})
}
