package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibeplace/vibeplace/internal/textanalysis"
	"github.com/vibeplace/vibeplace/pkg/types"
)

func newBuilder() *Builder {
	return New(textanalysis.New())
}

func analyzed(text string, rating, sentiment float64) types.AnalyzedReview {
	return types.AnalyzedReview{
		Review:    types.Review{Text: text, Rating: rating, RatingKnown: true},
		Sentiment: sentiment,
	}
}

func TestBuildEmptyInput(t *testing.T) {
	b := newBuilder()

	vector, metadata := b.Build(nil)
	assert.True(t, vector.IsZero())
	assert.Equal(t, types.EmptyPlaceMetadata(), metadata)

	vector, metadata = b.Build([]types.AnalyzedReview{})
	assert.True(t, vector.IsZero())
	assert.Empty(t, metadata.Keywords)
}

func TestBuildDimensionAndOrder(t *testing.T) {
	b := newBuilder()

	reviews := []types.AnalyzedReview{
		analyzed("Fun lively bar with great music", 5, 0.8),
		analyzed("Busy but friendly, loved the vibe", 4, 0.6),
	}

	vector, metadata := b.Build(reviews)
	assert.Len(t, vector, types.VectorDim)

	// Slot 0: average sentiment
	assert.InDelta(t, 0.7, vector[0], 1e-9)
	// Slot 2: normalized average rating
	assert.InDelta(t, 4.5/types.RatingScale, vector[2], 1e-9)
	// Slot 7: normalized review count
	assert.InDelta(t, 2.0/types.ReviewCountDivisor, vector[7], 1e-9)

	// Metadata mirrors the vector inputs.
	assert.InDelta(t, 0.7, metadata.Sentiment.Average, 1e-9)
	assert.Equal(t, 2, metadata.ReviewQuality.ReviewCount)
	assert.Equal(t, vector[5], metadata.EmotionalStats.Positivity)
	assert.Equal(t, vector[6], metadata.EmotionalStats.ActivityLevel)
}

func TestBuildIdenticalReviewsZeroVariance(t *testing.T) {
	b := newBuilder()

	reviews := []types.AnalyzedReview{
		analyzed("Good coffee here", 4, 0.5),
		analyzed("Good coffee here", 4, 0.5),
		analyzed("Good coffee here", 4, 0.5),
	}

	vector, metadata := b.Build(reviews)
	assert.Zero(t, vector[1]) // sentiment variance
	assert.Zero(t, vector[3]) // rating variance
	assert.Zero(t, metadata.Sentiment.Variance)
	assert.Zero(t, metadata.ReviewQuality.DetailVariance)
}

func TestBuildAbsentRatingsTreatedAsZero(t *testing.T) {
	b := newBuilder()

	reviews := []types.AnalyzedReview{
		analyzed("Nice spot", 4, 0.5),
		{Review: types.Review{Text: "Also nice"}, Sentiment: 0.5}, // no rating
	}

	vector, _ := b.Build(reviews)
	assert.InDelta(t, 2.0/types.RatingScale, vector[2], 1e-9)
}

func TestBuildActivityLevel(t *testing.T) {
	b := newBuilder()

	// Three distinct vocabulary words: fun, busy, lively.
	reviews := []types.AnalyzedReview{
		analyzed("fun and busy, such a lively crowd here", 5, 0.9),
	}

	vector, _ := b.Build(reviews)
	want := 3.0 / float64(len(activityVocabulary))
	assert.InDelta(t, want, vector[6], 1e-9)
}

func TestBuildLengthNormalization(t *testing.T) {
	b := newBuilder()

	reviews := []types.AnalyzedReview{
		analyzed("one two three four five six seven eight nine ten", 3, 0),
	}

	vector, metadata := b.Build(reviews)
	assert.InDelta(t, 10.0/types.LengthDivisor, vector[4], 1e-9)
	assert.InDelta(t, 10.0, metadata.ReviewQuality.AverageLength, 1e-9)
}

func TestBuildKeywordsPopulated(t *testing.T) {
	b := newBuilder()

	reviews := []types.AnalyzedReview{
		analyzed("Incredible jazz trio playing every weekend", 5, 0.9),
		analyzed("The jazz here is worth the trip alone", 5, 0.8),
	}

	_, metadata := b.Build(reviews)
	assert.NotEmpty(t, metadata.Keywords)
	assert.LessOrEqual(t, len(metadata.Keywords), textanalysis.DefaultMaxKeywords)
}
