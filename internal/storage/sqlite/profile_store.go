// Package sqlite implements storage.ProfileStore on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vibeplace/vibeplace/internal/storage"
	"github.com/vibeplace/vibeplace/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS taste_profiles (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	preferences TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_taste_profiles_updated_at ON taste_profiles(updated_at DESC);
`

// ProfileStore implements storage.ProfileStore using SQLite.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore opens a SQLite database at dsn, configures WAL mode, and
// creates the schema. Use ":memory:" for an in-memory store.
func NewProfileStore(dsn string) (*ProfileStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}

	// SQLite only supports one concurrent writer. A single open connection
	// serialises writes and avoids SQLITE_BUSY errors under concurrent load.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to create schema: %w", err)
	}

	return &ProfileStore{db: db}, nil
}

// Save creates or updates a profile (upsert semantics keyed by ID).
func (s *ProfileStore) Save(ctx context.Context, profile *types.TasteProfile) error {
	if profile == nil {
		return storage.ErrInvalidInput
	}
	if profile.ID == "" {
		return fmt.Errorf("%w: profile ID is required", storage.ErrInvalidInput)
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidInput, err)
	}

	prefs, err := json.Marshal(profile.Preferences)
	if err != nil {
		return fmt.Errorf("sqlite: failed to marshal preferences: %w", err)
	}

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO taste_profiles (id, name, preferences, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			preferences = excluded.preferences,
			updated_at = excluded.updated_at`,
		profile.ID, profile.Name, string(prefs), profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sqlite: failed to save profile: %w", err)
	}
	return nil
}

// Get retrieves a profile by ID.
func (s *ProfileStore) Get(ctx context.Context, id string) (*types.TasteProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, preferences, created_at, updated_at
		FROM taste_profiles WHERE id = ?`, id)

	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to get profile: %w", err)
	}
	return profile, nil
}

// List returns all profiles, most recently updated first.
func (s *ProfileStore) List(ctx context.Context) ([]*types.TasteProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, preferences, created_at, updated_at
		FROM taste_profiles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*types.TasteProfile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Delete removes a profile by ID.
func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM taste_profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: failed to delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: failed to delete profile: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Close closes the underlying database.
func (s *ProfileStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*types.TasteProfile, error) {
	var (
		profile types.TasteProfile
		prefs   string
	)
	if err := row.Scan(&profile.ID, &profile.Name, &prefs, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(prefs), &profile.Preferences); err != nil {
		return nil, fmt.Errorf("corrupt preferences for profile %s: %w", profile.ID, err)
	}
	return &profile, nil
}
