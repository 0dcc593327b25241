// Package textanalysis converts raw review text into the numeric signals
// the vectorizer aggregates: per-review sentiment polarity, corpus-level
// keyword weights, and aggregate review metrics.
//
// The sentiment model is lexicon-based with a short negation window;
// keyword extraction is TF-IDF over unigrams and bigrams with English
// stop words removed. Both degrade to neutral/empty results rather than
// returning errors, so a single unusable review can never abort
// aggregation of a place.
package textanalysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/vibeplace/vibeplace/pkg/types"
)

const (
	// DefaultNegationWindow is how many tokens before a lexicon hit are
	// checked for a negator.
	DefaultNegationWindow = 3

	// DefaultMaxKeywords caps the number of extracted keywords.
	DefaultMaxKeywords = 5
)

// Analyzer performs sentiment scoring and keyword extraction. It is
// stateless after construction and safe for concurrent use.
type Analyzer struct {
	negationWindow int
	maxKeywords    int
}

// New creates an Analyzer with the default negation window and keyword cap.
func New() *Analyzer {
	return &Analyzer{
		negationWindow: DefaultNegationWindow,
		maxKeywords:    DefaultMaxKeywords,
	}
}

// Tokenize lowercases the text, strips punctuation, and splits it into
// word tokens. Apostrophes are dropped rather than split so contractions
// stay single tokens ("don't" -> "dont").
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'', r == '’':
			// drop
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Fields(b.String())
}

// Polarity returns the sentiment polarity of the text in [-1, 1].
// Empty or whitespace-only text scores 0. A lexicon hit preceded by a
// negator within the negation window contributes its flipped weight.
func (a *Analyzer) Polarity(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	var hits int

	for i, tok := range tokens {
		weight, ok := sentimentLexicon[tok]
		if !ok {
			continue
		}

		negated := false
		for j := i - 1; j >= 0 && j >= i-a.negationWindow; j-- {
			if isNegator(tokens[j]) {
				negated = true
				break
			}
		}
		if negated {
			weight = -weight
		}

		sum += weight
		hits++
	}

	if hits == 0 {
		return 0
	}

	score := sum / float64(hits)
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}
	return score
}

// AnalyzeReviews attaches sentiment and keywords to each usable review.
// Reviews that fail validation (no text) are dropped rather than treated
// as an error, matching the "no usable evidence" policy upstream.
func (a *Analyzer) AnalyzeReviews(reviews []types.Review) []types.AnalyzedReview {
	analyzed := make([]types.AnalyzedReview, 0, len(reviews))

	for _, review := range reviews {
		if err := review.Validate(); err != nil {
			continue
		}

		keywords := a.Keywords([]string{review.Text}, a.maxKeywords)
		words := make([]string, len(keywords))
		for i, kw := range keywords {
			words[i] = kw.Word
		}

		analyzed = append(analyzed, types.AnalyzedReview{
			Review:    review,
			Sentiment: a.Polarity(review.Text),
			Keywords:  words,
		})
	}

	return analyzed
}

// ReviewMetrics are corpus-level aggregates over analyzed reviews,
// served alongside raw reviews by the reviews endpoint.
type ReviewMetrics struct {
	AverageRating  float64  `json:"average_rating"`
	SentimentScore float64  `json:"sentiment_score"`
	ReviewCount    int      `json:"review_count"`
	CommonKeywords []string `json:"common_keywords"`
}

// Metrics computes aggregate metrics for a set of analyzed reviews.
// An empty input yields the zero-valued metrics shape.
func (a *Analyzer) Metrics(reviews []types.AnalyzedReview) ReviewMetrics {
	if len(reviews) == 0 {
		return ReviewMetrics{CommonKeywords: []string{}}
	}

	var ratingSum, sentimentSum float64
	freq := make(map[string]int)
	for _, r := range reviews {
		ratingSum += r.Rating
		sentimentSum += r.Sentiment
		for _, kw := range r.Keywords {
			freq[kw]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	counts := make([]wordCount, 0, len(freq))
	for w, c := range freq {
		counts = append(counts, wordCount{w, c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	common := make([]string, 0, a.maxKeywords)
	for i := 0; i < len(counts) && i < a.maxKeywords; i++ {
		common = append(common, counts[i].word)
	}

	n := float64(len(reviews))
	return ReviewMetrics{
		AverageRating:  ratingSum / n,
		SentimentScore: sentimentSum / n,
		ReviewCount:    len(reviews),
		CommonKeywords: common,
	}
}
