package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/vibeplace/vibeplace/internal/storage"
	"github.com/vibeplace/vibeplace/pkg/types"
)

// ProfileHandlers serves CRUD endpoints for saved taste profiles.
type ProfileHandlers struct {
	store storage.ProfileStore
}

// NewProfileHandlers creates a ProfileHandlers.
func NewProfileHandlers(store storage.ProfileStore) *ProfileHandlers {
	return &ProfileHandlers{store: store}
}

// List handles GET /api/profiles.
func (h *ProfileHandlers) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list profiles", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// Get handles GET /api/profiles/{id}.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := extractID(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "profile ID is required", nil)
		return
	}

	profile, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "profile not found", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Create handles POST /api/profiles.
func (h *ProfileHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse request body", err)
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	profile := &types.TasteProfile{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Preferences: req.Preferences,
	}
	if err := h.store.Save(r.Context(), profile); err != nil {
		if errors.Is(err, storage.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "invalid profile", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to save profile", err)
		return
	}
	respondJSON(w, http.StatusCreated, profile)
}

// Update handles PUT /api/profiles/{id}. Missing fields keep their stored
// values.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := extractID(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "profile ID is required", nil)
		return
	}

	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse request body", err)
		return
	}

	profile, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "profile not found", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get profile", err)
		return
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Preferences != nil {
		profile.Preferences = req.Preferences
	}

	if err := h.store.Save(r.Context(), profile); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /api/profiles/{id}.
func (h *ProfileHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := extractID(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "profile ID is required", nil)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "profile not found", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete profile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
