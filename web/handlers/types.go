package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vibeplace/vibeplace/internal/textanalysis"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// ErrorResponse is the standard error response format for the API.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendRequest is the request body for POST /api/recommendations.
// Callers either supply candidate places directly or a location to search
// around; when both are present the explicit places win.
type RecommendRequest struct {
	Preferences  types.UserPreferences `json:"preferences"`
	Places       []types.Place         `json:"places,omitempty"`
	Location     *types.Location       `json:"location,omitempty"`
	RadiusMeters float64               `json:"radius_meters,omitempty"`
}

// RecommendResponse is the response body for POST /api/recommendations.
type RecommendResponse struct {
	RequestID       string                      `json:"request_id"`
	Recommendations []types.Recommendation      `json:"recommendations"`
	Summary         types.RecommendationSummary `json:"summary"`
}

// ReviewsResponse is the response body for GET /api/reviews.
type ReviewsResponse struct {
	PlaceID string                     `json:"place_id"`
	Reviews []types.AnalyzedReview     `json:"reviews"`
	Metrics textanalysis.ReviewMetrics `json:"metrics"`
}

// MusicProfileResponse is the response body for GET /api/music/profile.
type MusicProfileResponse struct {
	Source      string                `json:"source"` // "spotify" or "dataset"
	Preferences types.UserPreferences `json:"preferences"`
}

// SaveProfileRequest is the request body for POST /api/profiles and
// PUT /api/profiles/{id}.
type SaveProfileRequest struct {
	Name        string                `json:"name"`
	Preferences types.UserPreferences `json:"preferences"`
}

// extractID extracts a path parameter from the request.
func extractID(r *http.Request, key string) string {
	return r.PathValue(key)
}

// parseInt parses an integer from a string, returning defaultValue if parsing fails.
func parseInt(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return val
}

// parseFloat parses a float from a string, returning defaultValue if parsing fails.
func parseFloat(s string, defaultValue float64) float64 {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultValue
	}
	return val
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent, so log and move on.
		fmt.Printf("failed to encode JSON response: %v\n", err)
	}
}

// respondError writes an error response with the given status code.
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	errResp := ErrorResponse{
		Error: message,
		Code:  http.StatusText(statusCode),
	}

	if err != nil {
		errResp.Details = map[string]interface{}{
			"error": err.Error(),
		}
	}

	respondJSON(w, statusCode, errResp)
}
