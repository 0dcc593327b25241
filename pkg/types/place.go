package types

import (
	"errors"
	"strings"
)

// ErrMissingPlaceID is returned by Place.Validate when the record has no
// identifier.
var ErrMissingPlaceID = errors.New("types: place has no id")

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a candidate venue as supplied by the place source.
// DistanceMeters is optional: a negative value means the distance from
// the query point is unknown and the engine skips the distance penalty.
type Place struct {
	ID             string   `json:"place_id"`        // Upstream place identifier
	Name           string   `json:"name"`            // Display name
	Types          []string `json:"types,omitempty"` // Upstream type tags (e.g. "bar", "cafe")
	Location       Location `json:"location"`        // Geographic coordinates
	Address        string   `json:"formatted_address,omitempty"`
	DistanceMeters float64  `json:"distance_meters,omitempty"` // Distance from query point; <0 when unknown
}

// Validate checks that the place record can be processed at all.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingPlaceID
	}
	return nil
}

// HasDistance reports whether a distance from the query point is known.
func (p *Place) HasDistance() bool {
	return p.DistanceMeters >= 0
}
