package textanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibeplace/vibeplace/pkg/types"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "Great food, great music!", []string{"great", "food", "great", "music"}},
		{"contractions", "Don't go here", []string{"dont", "go", "here"}},
		{"empty", "", nil},
		{"punctuation only", "?!... ---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPolarity(t *testing.T) {
	a := New()

	tests := []struct {
		name string
		text string
		sign int // -1, 0, +1
	}{
		{"positive", "Amazing food and friendly staff, we loved it", 1},
		{"negative", "Terrible service, dirty tables, rude waiter", -1},
		{"neutral no lexicon hits", "We sat by the window near the door", 0},
		{"empty", "", 0},
		{"whitespace", "   \n\t ", 0},
		{"negated positive", "not good at all", -1},
		{"negated negative", "the music wasn't bad", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := a.Polarity(tt.text)
			assert.GreaterOrEqual(t, score, -1.0)
			assert.LessOrEqual(t, score, 1.0)

			switch tt.sign {
			case 1:
				assert.Greater(t, score, 0.0)
			case -1:
				assert.Less(t, score, 0.0)
			default:
				assert.Zero(t, score)
			}
		})
	}
}

func TestPolarityNegationWindow(t *testing.T) {
	a := New()

	// Negator directly before the hit flips it.
	near := a.Polarity("not great")
	assert.Less(t, near, 0.0)

	// Negator further back than the window does not flip.
	far := a.Polarity("not that the band in this great venue")
	assert.Greater(t, far, 0.0)
}

func TestKeywords(t *testing.T) {
	a := New()

	docs := []string{
		"Great live music and great cocktails",
		"The live music here is fantastic",
		"Quiet corner spot, decent coffee",
	}

	keywords := a.Keywords(docs, 5)
	assert.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 5)

	// Scores are sorted descending.
	for i := 1; i < len(keywords); i++ {
		assert.GreaterOrEqual(t, keywords[i-1].Score, keywords[i].Score)
	}

	// Stop words never surface as keywords.
	for _, kw := range keywords {
		assert.False(t, isStopWord(kw.Word), "stop word %q extracted", kw.Word)
	}
}

func TestKeywordsIncludesBigrams(t *testing.T) {
	a := New()

	docs := []string{
		"live music live music live music",
		"live music every night",
	}

	keywords := a.Keywords(docs, 10)

	found := false
	for _, kw := range keywords {
		if kw.Word == "live music" {
			found = true
		}
	}
	assert.True(t, found, "expected bigram 'live music' in %v", keywords)
}

func TestKeywordsDegradesToEmpty(t *testing.T) {
	a := New()

	assert.Empty(t, a.Keywords(nil, 5))
	assert.Empty(t, a.Keywords([]string{""}, 5))
	assert.Empty(t, a.Keywords([]string{"the and of to"}, 5))
}

func TestKeywordsShortTextYieldsFewer(t *testing.T) {
	a := New()

	keywords := a.Keywords([]string{"jazz"}, 5)
	assert.LessOrEqual(t, len(keywords), 5)
	assert.Len(t, keywords, 1)
}

func TestAnalyzeReviews(t *testing.T) {
	a := New()

	reviews := []types.Review{
		{Text: "Fantastic venue with friendly staff", Rating: 5, RatingKnown: true},
		{Text: ""},       // dropped: no text
		{Text: "   \t "}, // dropped: whitespace only
		{Text: "Terrible, rude and dirty", Rating: 1, RatingKnown: true},
	}

	analyzed := a.AnalyzeReviews(reviews)
	assert.Len(t, analyzed, 2)

	assert.Greater(t, analyzed[0].Sentiment, 0.0)
	assert.Less(t, analyzed[1].Sentiment, 0.0)
	assert.NotEmpty(t, analyzed[0].Keywords)
}

func TestMetrics(t *testing.T) {
	a := New()

	analyzed := []types.AnalyzedReview{
		{Review: types.Review{Rating: 4}, Sentiment: 0.5, Keywords: []string{"music", "cocktails"}},
		{Review: types.Review{Rating: 2}, Sentiment: -0.5, Keywords: []string{"music"}},
	}

	m := a.Metrics(analyzed)
	assert.Equal(t, 3.0, m.AverageRating)
	assert.Equal(t, 0.0, m.SentimentScore)
	assert.Equal(t, 2, m.ReviewCount)
	assert.Equal(t, "music", m.CommonKeywords[0])
}

func TestMetricsEmpty(t *testing.T) {
	a := New()

	m := a.Metrics(nil)
	assert.Zero(t, m.AverageRating)
	assert.Zero(t, m.ReviewCount)
	assert.NotNil(t, m.CommonKeywords)
	assert.Empty(t, m.CommonKeywords)
}
