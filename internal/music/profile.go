package music

import "github.com/vibeplace/vibeplace/pkg/types"

// loudnessFloorDB is the bottom of Spotify's loudness range. Track
// loudness in dB is mapped from [floor, 0] onto [0, 1] for the slider.
const loudnessFloorDB = -60.0

// ProfileFromTracks averages the audio features of the given tracks
// into a preference slider map. An empty track list yields an empty map
// (callers fall back to slider defaults).
//
// Slider mapping: valence and energy and liveness map directly;
// loudness is the normalized mean dB loudness; ambiance is the inverse
// of acousticness-adjusted energy — acoustic-leaning listeners get a
// calmer ambiance preference.
func ProfileFromTracks(tracks []Track) types.UserPreferences {
	if len(tracks) == 0 {
		return types.UserPreferences{}
	}

	var valence, energy, loudness, liveness, acousticness float64
	for _, t := range tracks {
		valence += t.Valence
		energy += t.Energy
		loudness += t.Loudness
		liveness += t.Liveness
		acousticness += t.Acousticness
	}

	n := float64(len(tracks))
	valence /= n
	energy /= n
	loudness /= n
	liveness /= n
	acousticness /= n

	return types.UserPreferences{
		types.SliderValence:  clamp01(valence),
		types.SliderEnergy:   clamp01(energy),
		types.SliderLoudness: clamp01((loudness - loudnessFloorDB) / -loudnessFloorDB),
		types.SliderLiveness: clamp01(liveness),
		types.SliderAmbiance: clamp01(1 - acousticness),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
