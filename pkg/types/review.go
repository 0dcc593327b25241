// Package types defines the core domain records shared across VibePlace:
// reviews, places, preference vectors, and recommendations. Records are
// validated at the boundary where raw upstream data enters the system and
// treated as immutable afterwards.
package types

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyReviewText is returned by Review.Validate when a review carries
// no usable text.
var ErrEmptyReviewText = errors.New("types: review has no text")

// Review is a single raw place review as returned by the review source.
// Ratings are on a 0-5 scale; a zero Rating with RatingKnown=false means
// the source did not supply one.
type Review struct {
	Text        string    `json:"text"`                  // Raw review text
	Rating      float64   `json:"rating"`                // Star rating 0-5 (0 when absent)
	RatingKnown bool      `json:"rating_known"`          // Whether the source supplied a rating
	Time        time.Time `json:"time"`                  // When the review was written
	Author      string    `json:"author_name,omitempty"` // Display name of the reviewer
}

// Validate checks that the review carries analyzable content.
// Whitespace-only text is treated as empty.
func (r *Review) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyReviewText
	}
	return nil
}

// WordCount returns the number of whitespace-separated words in the
// review text.
func (r *Review) WordCount() int {
	return len(strings.Fields(r.Text))
}

// AnalyzedReview is a Review plus the derived per-review signals attached
// by the text analyzer. It exists only between analysis and aggregation;
// it is never persisted.
type AnalyzedReview struct {
	Review

	// Sentiment is the lexicon polarity of the review text, in [-1, 1].
	Sentiment float64 `json:"sentiment"`

	// Keywords are the representative terms extracted from the review
	// text, most significant first.
	Keywords []string `json:"keywords"`
}
