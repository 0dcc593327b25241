// Package engine implements the recommendation pipeline: it turns a user
// preference vector and a list of candidate places into a ranked,
// deduplicated, diversified list of at most MaxResults recommendations.
//
// Processing is request-scoped and sequential. The only state shared
// across requests is the static exclusion set and the injected
// collaborators, all of which are read-only.
package engine

import (
	"context"
	"errors"
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/vibeplace/vibeplace/internal/textanalysis"
	"github.com/vibeplace/vibeplace/internal/vectorizer"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// Request validation errors. These reject the whole request; everything
// else is recovered per place.
var (
	ErrMissingPreferences = errors.New("engine: user preferences are required")
	ErrMissingPlaces      = errors.New("engine: place list is required")
)

// ReviewSource fetches raw reviews for a place. An error or empty result
// is treated as "no reviews" — the place is skipped, never scored with a
// default.
type ReviewSource interface {
	Reviews(ctx context.Context, placeID string) ([]types.Review, error)
}

// Config holds the engine's scoring tunables.
type Config struct {
	// MaxResults caps the recommendation list.
	MaxResults int

	// MinScore is the minimum final score for inclusion.
	MinScore float64

	// DistancePenaltyWeight is the maximum fractional score reduction
	// applied at the radius boundary.
	DistancePenaltyWeight float64

	// NoiseAmplitude bounds the random perturbation added to each
	// score. This is intentional exploration noise so repeated requests
	// do not always surface the identical narrow top-N.
	NoiseAmplitude float64

	// DefaultRadiusMeters is used when a request carries no radius.
	DefaultRadiusMeters float64

	// MMRLambda balances relevance against diversity in the
	// diversification pass (1.0 = plain truncation).
	MMRLambda float64
}

// DefaultConfig returns the documented default tunables.
func DefaultConfig() Config {
	return Config{
		MaxResults:            10,
		MinScore:              0.2,
		DistancePenaltyWeight: 0.3,
		NoiseAmplitude:        0.05,
		DefaultRadiusMeters:   5000,
		MMRLambda:             0.7,
	}
}

// ProgressEvent describes the outcome of processing one candidate place.
// Events are delivered to the optional progress callback as the request
// is processed, in candidate order.
type ProgressEvent struct {
	PlaceID string  `json:"place_id"`
	Name    string  `json:"name"`
	Stage   string  `json:"stage"` // "excluded", "no_reviews", "skipped", "scored"
	Score   float64 `json:"score,omitempty"`
}

// Engine scores candidate places against a user preference vector.
type Engine struct {
	reviews  ReviewSource
	analyzer *textanalysis.Analyzer
	builder  *vectorizer.Builder
	rng      *rand.Rand
	config   Config

	progress func(ProgressEvent)
}

// New creates an Engine. The random source is a required capability so
// the exploration noise is seedable in tests; pass rand.New(rand.NewSource(...)).
func New(reviews ReviewSource, analyzer *textanalysis.Analyzer, builder *vectorizer.Builder, rng *rand.Rand, cfg Config) *Engine {
	return &Engine{
		reviews:  reviews,
		analyzer: analyzer,
		builder:  builder,
		rng:      rng,
		config:   cfg,
	}
}

// SetProgressFunc registers an optional callback invoked once per
// processed candidate. Must be set before Recommend is called.
func (e *Engine) SetProgressFunc(fn func(ProgressEvent)) {
	e.progress = fn
}

// Request is one recommendation request.
type Request struct {
	Preferences  types.UserPreferences
	Places       []types.Place
	RadiusMeters float64 // 0 means use the configured default
}

// Result is the ranked recommendation list plus its processing summary.
// The summary's RequestID is filled in by the caller.
type Result struct {
	Recommendations []types.Recommendation
	Summary         types.RecommendationSummary
}

// candidate is a scored place awaiting ranking.
type candidate struct {
	place    types.Place
	score    float64
	metadata types.PlaceMetadata
}

// Recommend runs the full pipeline. A single place's failure (malformed
// record, review fetch failure, vector build panic) is logged and that
// place skipped; the request still returns every valid recommendation.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	if len(req.Preferences) == 0 {
		return nil, ErrMissingPreferences
	}
	if len(req.Places) == 0 {
		return nil, ErrMissingPlaces
	}

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = e.config.DefaultRadiusMeters
	}

	userVector := req.Preferences.Vector()

	// Deduplicate by place id, first occurrence wins.
	seen := make(map[string]struct{}, len(req.Places))
	places := make([]types.Place, 0, len(req.Places))
	for _, p := range req.Places {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		places = append(places, p)
	}

	summary := types.RecommendationSummary{
		Processed:    len(places),
		RadiusMeters: radius,
	}

	candidates := make([]candidate, 0, len(places))
	for _, place := range places {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if IsExcluded(place.Types) {
			summary.Excluded++
			e.emit(ProgressEvent{PlaceID: place.ID, Name: place.Name, Stage: "excluded"})
			continue
		}

		c, stage := e.scorePlace(ctx, userVector, place, radius)
		switch stage {
		case "no_reviews":
			summary.NoReviews++
		}
		e.emit(ProgressEvent{PlaceID: place.ID, Name: place.Name, Stage: stage, Score: c.score})

		if stage == "scored" && c.score >= e.config.MinScore {
			candidates = append(candidates, c)
		}
	}

	// Stable sort keeps input order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	top := diversify(candidates, e.config.MaxResults, e.config.MMRLambda)

	recommendations := make([]types.Recommendation, 0, len(top))
	for _, c := range top {
		recommendations = append(recommendations, types.Recommendation{
			PlaceID:         c.place.ID,
			Name:            c.place.Name,
			Types:           c.place.Types,
			SimilarityScore: c.score,
			StarRating:      starRating(c.score),
			CategoryScores:  c.metadata,
			Location:        c.place.Location,
			Address:         c.place.Address,
		})
	}
	summary.Recommended = len(recommendations)

	return &Result{Recommendations: recommendations, Summary: summary}, nil
}

// scorePlace fetches, analyzes, and scores one candidate. It never
// returns an error: failures map to a skip stage so the batch continues.
func (e *Engine) scorePlace(ctx context.Context, userVector types.PlaceVector, place types.Place, radius float64) (c candidate, stage string) {
	c = candidate{place: place}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: scoring panic for place %s: %v", place.ID, r)
			c = candidate{place: place}
			stage = "skipped"
		}
	}()

	if err := place.Validate(); err != nil {
		log.Printf("engine: skipping malformed place record: %v", err)
		return c, "skipped"
	}

	reviews, err := e.reviews.Reviews(ctx, place.ID)
	if err != nil {
		// Upstream failure is indistinguishable from "no data" for
		// scoring purposes.
		log.Printf("engine: review fetch failed for place %s: %v", place.ID, err)
		return c, "no_reviews"
	}
	if len(reviews) == 0 {
		return c, "no_reviews"
	}

	analyzed := e.analyzer.AnalyzeReviews(reviews)
	if len(analyzed) == 0 {
		return c, "no_reviews"
	}

	vector, metadata := e.builder.Build(analyzed)
	c.metadata = metadata

	score := CosineSimilarity(userVector, vector)

	// Distance penalty: proportional reduction up to the configured
	// weight at the radius boundary. Places without a known distance
	// skip this adjustment.
	if radius > 0 && place.HasDistance() {
		ratio := place.DistanceMeters / radius
		if ratio > 1 {
			ratio = 1
		}
		score *= 1 - e.config.DistancePenaltyWeight*ratio
	}

	// Bounded exploration noise, then clamp to [0, 1].
	score += (e.rng.Float64()*2 - 1) * e.config.NoiseAmplitude
	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}

	c.score = score
	return c, "scored"
}

// starRating maps a final score to a 1-5 star rating.
func starRating(score float64) int {
	stars := int(math.Round(score * 5))
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// emit delivers a progress event when a callback is registered.
func (e *Engine) emit(event ProgressEvent) {
	if e.progress != nil {
		e.progress(event)
	}
}
