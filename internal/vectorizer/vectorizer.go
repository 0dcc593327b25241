// Package vectorizer aggregates a place's analyzed reviews into the
// fixed-dimension feature vector and metadata record the recommendation
// engine scores against.
package vectorizer

import (
	"math"
	"strings"

	"github.com/vibeplace/vibeplace/internal/textanalysis"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// activityVocabulary is the fixed word list used for the activity-level
// dimension: the fraction of these words present in the combined review
// text. Both high- and low-energy words are included so the dimension
// reflects how much reviewers talk about the venue's energy at all.
var activityVocabulary = []string{
	"fun", "busy", "quiet", "peaceful", "lively", "energetic",
	"crowded", "relaxing", "vibrant", "calm", "bustling", "buzzing",
	"dancing", "loud", "chill", "hopping",
}

// Builder turns analyzed reviews into (PlaceVector, PlaceMetadata) pairs.
// It is a pure transformation: no side effects, safe for concurrent use.
type Builder struct {
	analyzer *textanalysis.Analyzer
}

// New creates a Builder using the given analyzer for corpus-level
// sentiment and keyword extraction.
func New(analyzer *textanalysis.Analyzer) *Builder {
	return &Builder{analyzer: analyzer}
}

// Build produces exactly one vector/metadata pair for one place.
//
// An empty input returns the documented zero vector and empty metadata;
// this is a valid result, not an error. Ratings absent upstream are
// treated as 0 in the mean and variance — a known approximation that
// biases both toward the low end for sparsely rated places.
//
// Slot order is the VectorDim v1 contract; see types.VectorDim.
func (b *Builder) Build(reviews []types.AnalyzedReview) (types.PlaceVector, types.PlaceMetadata) {
	if len(reviews) == 0 {
		return types.PlaceVector{}, types.EmptyPlaceMetadata()
	}

	sentiments := make([]float64, len(reviews))
	ratings := make([]float64, len(reviews))
	lengths := make([]float64, len(reviews))
	texts := make([]string, len(reviews))

	for i, r := range reviews {
		sentiments[i] = r.Sentiment
		ratings[i] = r.Rating // absent ratings arrive as 0
		lengths[i] = float64(r.WordCount())
		texts[i] = r.Text
	}

	avgSentiment, sentimentVar := meanVariance(sentiments)
	avgRating, ratingVar := meanVariance(ratings)
	avgLength, lengthVar := meanVariance(lengths)

	combined := strings.Join(texts, " ")

	// Corpus tone is scored over the concatenated text, independent of
	// the per-review average: one long enthusiastic review moves it more
	// than the same words split across reviews move the mean.
	emotional := b.analyzer.Polarity(combined)
	activity := activityLevel(combined)

	keywords := b.analyzer.Keywords(texts, textanalysis.DefaultMaxKeywords)

	vector := types.PlaceVector{
		avgSentiment,
		sentimentVar,
		avgRating / types.RatingScale,
		ratingVar,
		avgLength / types.LengthDivisor,
		emotional,
		activity,
		float64(len(reviews)) / types.ReviewCountDivisor,
	}

	metadata := types.PlaceMetadata{
		Sentiment: types.SentimentStats{
			Average:  avgSentiment,
			Variance: sentimentVar,
		},
		ReviewQuality: types.ReviewQualityStats{
			AverageLength:  avgLength,
			DetailVariance: lengthVar,
			ReviewCount:    len(reviews),
		},
		Keywords: keywords,
		EmotionalStats: types.EmotionalStats{
			Positivity:    emotional,
			ActivityLevel: activity,
		},
	}

	return vector, metadata
}

// meanVariance returns the mean and population variance of xs.
func meanVariance(xs []float64) (mean, variance float64) {
	if len(xs) == 0 {
		return 0, 0
	}

	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))

	if math.IsNaN(mean) || math.IsNaN(variance) {
		return 0, 0
	}
	return mean, variance
}

// activityLevel returns the fraction of the activity vocabulary present
// in the combined text.
func activityLevel(combined string) float64 {
	tokens := textanalysis.Tokenize(combined)
	if len(tokens) == 0 {
		return 0
	}

	present := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		present[tok] = struct{}{}
	}

	found := 0
	for _, word := range activityVocabulary {
		if _, ok := present[word]; ok {
			found++
		}
	}
	return float64(found) / float64(len(activityVocabulary))
}
