package types

import (
	"errors"
	"time"
)

// ErrMissingProfileName is returned when a taste profile has no name.
var ErrMissingProfileName = errors.New("types: taste profile has no name")

// TasteProfile is a saved set of slider preferences a user can recall on a
// later visit. Profiles carry only the inputs to a recommendation request,
// never the computed place vectors or results.
type TasteProfile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Preferences UserPreferences `json:"preferences"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks that the profile can be stored.
func (p *TasteProfile) Validate() error {
	if p.Name == "" {
		return ErrMissingProfileName
	}
	return nil
}
