package types

// Slider names accepted in user preference maps. Each value is a float
// in [0, 1]; missing sliders default to DefaultSliderValue.
const (
	SliderValence  = "valence"
	SliderEnergy   = "energy"
	SliderLoudness = "loudness"
	SliderAmbiance = "ambiance"
	SliderLiveness = "liveness"
)

// DefaultSliderValue is used for any slider the user did not set, and
// for the vector slots the user does not directly control (sentiment
// variance, rating variance, review count).
const DefaultSliderValue = 0.5

// UserPreferences is the user-submitted preference mapping, keyed by
// slider name.
type UserPreferences map[string]float64

// get returns the named slider clamped to [0, 1], or the default when
// the slider is absent.
func (p UserPreferences) get(name string) float64 {
	v, ok := p[name]
	if !ok {
		return DefaultSliderValue
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vector builds the user preference vector in the PlaceVector slot order
// documented on VectorDim. Slots the user does not control (sentiment
// variance, rating variance, review count) carry fixed placeholder
// weights so the two vectors stay dimension- and order-compatible.
func (p UserPreferences) Vector() PlaceVector {
	return PlaceVector{
		p.get(SliderValence),  // 0: average sentiment
		DefaultSliderValue,    // 1: sentiment variance (placeholder)
		p.get(SliderAmbiance), // 2: normalized average rating
		DefaultSliderValue,    // 3: rating variance (placeholder)
		p.get(SliderLoudness), // 4: normalized review length
		p.get(SliderLiveness), // 5: emotional score
		p.get(SliderEnergy),   // 6: activity level
		DefaultSliderValue,    // 7: normalized review count (placeholder)
	}
}
