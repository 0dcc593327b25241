package types

// Recommendation is a single ranked venue in a recommendation response.
// Recommendations are created per request and never persisted.
type Recommendation struct {
	PlaceID         string        `json:"place_id"`
	Name            string        `json:"name"`
	Types           []string      `json:"types,omitempty"`
	SimilarityScore float64       `json:"similarity_score"` // Final adjusted score in [0, 1]
	StarRating      int           `json:"star_rating"`      // clamp(round(score*5), 1, 5)
	CategoryScores  PlaceMetadata `json:"category_scores"`
	Location        Location      `json:"location"`
	Address         string        `json:"address,omitempty"`
}

// RecommendationSummary describes how a recommendation request was
// processed. It accompanies the ranked list in the response.
type RecommendationSummary struct {
	RequestID    string  `json:"request_id"`
	Processed    int     `json:"places_processed"`   // Candidates after dedup, including skipped ones
	Excluded     int     `json:"places_excluded"`    // Skipped by the exclusion set
	NoReviews    int     `json:"places_no_reviews"`  // Skipped for lack of review evidence
	Recommended  int     `json:"places_recommended"` // Entries in the final list
	RadiusMeters float64 `json:"radius_meters"`
}
