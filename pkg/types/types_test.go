package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewValidate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"normal text", "Great atmosphere and friendly staff", nil},
		{"empty text", "", ErrEmptyReviewText},
		{"whitespace only", "   \t\n  ", ErrEmptyReviewText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Review{Text: tt.text}
			err := r.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewWordCount(t *testing.T) {
	r := Review{Text: "  lively   place, great  music "}
	assert.Equal(t, 4, r.WordCount())

	empty := Review{}
	assert.Equal(t, 0, empty.WordCount())
}

func TestPlaceValidate(t *testing.T) {
	p := Place{ID: "abc", Name: "Cafe"}
	assert.NoError(t, p.Validate())

	missing := Place{Name: "Nameless"}
	assert.ErrorIs(t, missing.Validate(), ErrMissingPlaceID)
}

func TestPlaceHasDistance(t *testing.T) {
	assert.True(t, (&Place{DistanceMeters: 0}).HasDistance())
	assert.True(t, (&Place{DistanceMeters: 1200}).HasDistance())
	assert.False(t, (&Place{DistanceMeters: -1}).HasDistance())
}

func TestPlaceVectorIsZero(t *testing.T) {
	var zero PlaceVector
	assert.True(t, zero.IsZero())

	almost := PlaceVector{}
	almost[7] = 0.001
	assert.False(t, almost.IsZero())
}

func TestUserPreferencesVector(t *testing.T) {
	prefs := UserPreferences{
		SliderValence:  0.8,
		SliderEnergy:   0.6,
		SliderLoudness: 0.4,
	}

	vec := prefs.Vector()
	assert.Len(t, vec, VectorDim)

	// Controlled slots
	assert.Equal(t, 0.8, vec[0]) // valence -> sentiment
	assert.Equal(t, 0.4, vec[4]) // loudness -> review length
	assert.Equal(t, 0.6, vec[6]) // energy -> activity level

	// Missing sliders default to 0.5
	assert.Equal(t, DefaultSliderValue, vec[2]) // ambiance absent
	assert.Equal(t, DefaultSliderValue, vec[5]) // liveness absent

	// Placeholder slots are always 0.5
	assert.Equal(t, DefaultSliderValue, vec[1])
	assert.Equal(t, DefaultSliderValue, vec[3])
	assert.Equal(t, DefaultSliderValue, vec[7])
}

func TestUserPreferencesVectorClamps(t *testing.T) {
	prefs := UserPreferences{
		SliderValence: 1.7,
		SliderEnergy:  -0.3,
	}

	vec := prefs.Vector()
	assert.Equal(t, 1.0, vec[0])
	assert.Equal(t, 0.0, vec[6])
}

func TestEmptyPlaceMetadata(t *testing.T) {
	md := EmptyPlaceMetadata()
	assert.NotNil(t, md.Keywords)
	assert.Empty(t, md.Keywords)
	assert.Zero(t, md.Sentiment.Average)
	assert.Zero(t, md.ReviewQuality.ReviewCount)
}
