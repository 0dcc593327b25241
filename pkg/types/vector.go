package types

// VectorDim is the fixed dimension of both PlaceVector and the user
// preference vector. This is a versioned contract: similarity between the
// two is only meaningful when both sides agree on dimension and slot
// order, so any change here is a breaking change to the scoring pipeline.
//
// Slot order (v1):
//
//	0: average sentiment
//	1: sentiment variance
//	2: average rating, normalized by RatingScale
//	3: rating variance
//	4: average review length in words, normalized by LengthDivisor
//	5: emotional score (combined-text sentiment)
//	6: activity level
//	7: review count, normalized by ReviewCountDivisor
const VectorDim = 8

// Normalization constants shared by the vectorizer and its callers.
// They keep every slot in a range comparable to the [-1, 1] sentiment
// slots so no single dimension dominates the cosine.
const (
	// RatingScale is the maximum upstream star rating.
	RatingScale = 5.0

	// LengthDivisor normalizes average review length in words.
	LengthDivisor = 200.0

	// ReviewCountDivisor normalizes the review count.
	ReviewCountDivisor = 20.0
)

// PlaceVector is the fixed-length numeric feature vector for one place.
// The zero value is the documented fallback for places with no reviews
// and for places whose vector build failed.
type PlaceVector [VectorDim]float64

// IsZero reports whether every slot is exactly zero, i.e. the vector is
// the documented empty/fallback vector.
func (v PlaceVector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// SentimentStats holds per-place sentiment aggregates.
type SentimentStats struct {
	Average  float64 `json:"average"`
	Variance float64 `json:"variance"`
}

// ReviewQualityStats holds per-place review quality aggregates.
type ReviewQualityStats struct {
	AverageLength  float64 `json:"average_length"`  // Mean review length in words
	DetailVariance float64 `json:"detail_variance"` // Variance of review length in words
	ReviewCount    int     `json:"review_count"`
}

// Keyword is a single extracted term with its weight.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// EmotionalStats holds corpus-level tone aggregates for a place.
type EmotionalStats struct {
	// Positivity is the sentiment of the combined review text. It is
	// computed over the whole corpus at once, not averaged per review.
	Positivity float64 `json:"positivity"`

	// ActivityLevel is the fraction of the activity vocabulary present
	// in the combined review text.
	ActivityLevel float64 `json:"activity_level"`
}

// PlaceMetadata is the human-readable companion of a PlaceVector.
// The two are always produced together, one pair per place.
type PlaceMetadata struct {
	Sentiment      SentimentStats     `json:"sentiment"`
	ReviewQuality  ReviewQualityStats `json:"review_quality"`
	Keywords       []Keyword          `json:"keywords"`
	EmotionalStats EmotionalStats     `json:"emotional_stats"`
}

// EmptyPlaceMetadata returns the documented empty metadata shape used for
// places with no reviews. Keywords is an empty (non-nil) slice so the
// JSON form is stable.
func EmptyPlaceMetadata() PlaceMetadata {
	return PlaceMetadata{Keywords: []Keyword{}}
}
