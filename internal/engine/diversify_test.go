package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibeplace/vibeplace/pkg/types"
)

func cand(id string, score float64, tags ...string) candidate {
	return candidate{place: types.Place{ID: id, Types: tags}, score: score}
}

func TestDiversifyTruncatesWithPureRelevance(t *testing.T) {
	candidates := []candidate{
		cand("a", 0.9, "bar"),
		cand("b", 0.8, "bar"),
		cand("c", 0.7, "bar"),
	}

	out := diversify(candidates, 2, 1.0)
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].place.ID)
	assert.Equal(t, "b", out[1].place.ID)
}

func TestDiversifyPrefersDissimilarTypes(t *testing.T) {
	// Three near-duplicate bars and one slightly lower-scored cafe.
	candidates := []candidate{
		cand("bar1", 0.90, "bar", "night_club"),
		cand("bar2", 0.89, "bar", "night_club"),
		cand("bar3", 0.88, "bar", "night_club"),
		cand("cafe", 0.80, "cafe"),
	}

	out := diversify(candidates, 2, 0.7)
	assert.Len(t, out, 2)
	assert.Equal(t, "bar1", out[0].place.ID, "highest score is always selected first")
	assert.Equal(t, "cafe", out[1].place.ID, "a dissimilar type beats a near-duplicate")
}

func TestDiversifyOutputSortedByScore(t *testing.T) {
	candidates := []candidate{
		cand("a", 0.9, "bar"),
		cand("b", 0.85, "bar"),
		cand("c", 0.84, "cafe"),
		cand("d", 0.5, "museum"),
	}

	out := diversify(candidates, 3, 0.7)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].score, out[i].score)
	}
}

func TestDiversifyBounds(t *testing.T) {
	assert.Nil(t, diversify(nil, 10, 0.7))
	assert.Nil(t, diversify([]candidate{cand("a", 0.9, "bar")}, 0, 0.7))

	out := diversify([]candidate{cand("a", 0.9, "bar")}, 10, 0.7)
	assert.Len(t, out, 1)
}

func TestDiversifyDeterministic(t *testing.T) {
	candidates := []candidate{
		cand("a", 0.9, "bar"),
		cand("b", 0.9, "bar"),
		cand("c", 0.9, "cafe"),
	}

	first := diversify(candidates, 2, 0.7)
	second := diversify(candidates, 2, 0.7)
	assert.Equal(t, first, second)
}
