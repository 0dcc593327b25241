package engine

import (
	"math"

	"github.com/vibeplace/vibeplace/pkg/types"
)

// CosineSimilarity returns the cosine of the angle between two vectors:
// dot product over the product of magnitudes. When either vector has
// zero magnitude the similarity is defined as 0 to avoid division by
// zero — a place with the empty fallback vector can never rank.
func CosineSimilarity(a, b types.PlaceVector) float64 {
	var dot, magA, magB float64
	for i := 0; i < types.VectorDim; i++ {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// jaccardSimilarity computes Jaccard similarity between two type-tag
// lists, used by the diversification pass.
func jaccardSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
