package handlers

import (
	"context"
	"net/http"

	"github.com/vibeplace/vibeplace/internal/places"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// placesAPI is the slice of the places client these handlers need.
type placesAPI interface {
	Nearby(ctx context.Context, lat, lng, radiusMeters float64) ([]types.Place, error)
	Autocomplete(ctx context.Context, input string) ([]places.Prediction, error)
}

// PlacesHandlers serves the place search endpoints.
type PlacesHandlers struct {
	client              placesAPI
	defaultRadiusMeters float64
}

// NewPlacesHandlers creates a PlacesHandlers.
func NewPlacesHandlers(client placesAPI, defaultRadiusMeters float64) *PlacesHandlers {
	return &PlacesHandlers{client: client, defaultRadiusMeters: defaultRadiusMeters}
}

// Nearby handles GET /api/places/nearby?lat=&lng=&radius_meters=.
func (h *PlacesHandlers) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("lat") == "" || q.Get("lng") == "" {
		respondError(w, http.StatusBadRequest, "lat and lng are required", nil)
		return
	}
	lat := parseFloat(q.Get("lat"), 0)
	lng := parseFloat(q.Get("lng"), 0)
	radius := parseFloat(q.Get("radius_meters"), h.defaultRadiusMeters)

	results, err := h.client.Nearby(r.Context(), lat, lng, radius)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to search nearby places", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"places": results,
		"count":  len(results),
	})
}

// Autocomplete handles GET /api/places/autocomplete?input=.
func (h *PlacesHandlers) Autocomplete(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		respondError(w, http.StatusBadRequest, "input is required", nil)
		return
	}

	predictions, err := h.client.Autocomplete(r.Context(), input)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to autocomplete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"predictions": predictions,
	})
}
