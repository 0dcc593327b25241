package handlers

import (
	"net/http"

	"github.com/vibeplace/vibeplace/internal/engine"
	"github.com/vibeplace/vibeplace/internal/textanalysis"
)

// ReviewsHandlers serves analyzed reviews for a single place.
type ReviewsHandlers struct {
	reviews  engine.ReviewSource
	analyzer *textanalysis.Analyzer
}

// NewReviewsHandlers creates a ReviewsHandlers.
func NewReviewsHandlers(reviews engine.ReviewSource) *ReviewsHandlers {
	return &ReviewsHandlers{reviews: reviews, analyzer: textanalysis.New()}
}

// Get handles GET /api/reviews?place_id=. It returns the place's reviews
// with per-review sentiment and keywords, plus aggregate metrics.
func (h *ReviewsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("place_id")
	if placeID == "" {
		respondError(w, http.StatusBadRequest, "place_id is required", nil)
		return
	}

	raw, err := h.reviews.Reviews(r.Context(), placeID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to fetch reviews", err)
		return
	}

	analyzed := h.analyzer.AnalyzeReviews(raw)

	respondJSON(w, http.StatusOK, ReviewsResponse{
		PlaceID: placeID,
		Reviews: analyzed,
		Metrics: h.analyzer.Metrics(analyzed),
	})
}
