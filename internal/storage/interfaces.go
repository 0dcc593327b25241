// Package storage defines the persistence interfaces for saved taste
// profiles. Recommendation inputs are the only thing persisted; computed
// place vectors and results are rebuilt on every request.
package storage

import (
	"context"
	"errors"

	"github.com/vibeplace/vibeplace/pkg/types"
)

var (
	// ErrNotFound is returned when a profile does not exist.
	ErrNotFound = errors.New("storage: not found")

	// ErrInvalidInput is returned when a caller passes a nil or invalid profile.
	ErrInvalidInput = errors.New("storage: invalid input")
)

// ProfileStore provides CRUD operations for saved taste profiles.
type ProfileStore interface {
	// Save creates or updates a profile (upsert semantics keyed by ID).
	Save(ctx context.Context, profile *types.TasteProfile) error

	// Get retrieves a profile by ID. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*types.TasteProfile, error)

	// List returns all profiles ordered by most recently updated first.
	List(ctx context.Context) ([]*types.TasteProfile, error)

	// Delete removes a profile by ID. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
