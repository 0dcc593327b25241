package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibeplace/vibeplace/pkg/types"
)

func TestCosineSimilarityIdenticalVectors(t *testing.T) {
	v := types.PlaceVector{0.8, 0.5, 0.5, 0.5, 0.5, 0.5, 0.8, 0.5}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarityZeroMagnitude(t *testing.T) {
	var zero types.PlaceVector
	v := types.PlaceVector{0.8, 0.5, 0.5, 0.5, 0.5, 0.5, 0.8, 0.5}

	assert.Zero(t, CosineSimilarity(zero, v))
	assert.Zero(t, CosineSimilarity(v, zero))
	assert.Zero(t, CosineSimilarity(zero, zero))
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	a := types.PlaceVector{1, 0, 0, 0, 0, 0, 0, 0}
	b := types.PlaceVector{0, 1, 0, 0, 0, 0, 0, 0}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarityScaleInvariant(t *testing.T) {
	a := types.PlaceVector{0.2, 0.1, 0.4, 0, 0.1, 0.3, 0.2, 0.1}
	b := a
	for i := range b {
		b[i] *= 3
	}
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-9)
}

func TestJaccardSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"bar", "cafe"}, []string{"bar", "cafe"}, 1.0},
		{"disjoint", []string{"bar"}, []string{"museum"}, 0.0},
		{"partial", []string{"bar", "cafe"}, []string{"cafe", "restaurant", "bar"}, 2.0 / 3.0},
		{"both empty", nil, nil, 0.0},
		{"one empty", []string{"bar"}, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, jaccardSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestIsExcluded(t *testing.T) {
	assert.True(t, IsExcluded([]string{"restaurant", "lodging"}))
	assert.True(t, IsExcluded([]string{"hospital"}))
	assert.True(t, IsExcluded([]string{"church", "point_of_interest"}))
	assert.False(t, IsExcluded([]string{"bar", "night_club", "point_of_interest"}))
	assert.False(t, IsExcluded(nil))
}

func TestStarRating(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.0, 1},
		{0.05, 1},
		{0.3, 2},
		{0.5, 3},
		{0.7, 4},
		{0.9, 5},
		{1.0, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, starRating(tt.score), "score %v", tt.score)
	}
}
