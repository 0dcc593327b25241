package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeplace/vibeplace/internal/places"
	"github.com/vibeplace/vibeplace/pkg/types"
)

type fakePlacesAPI struct {
	places      []types.Place
	predictions []places.Prediction
	err         error

	gotRadius float64
}

func (f *fakePlacesAPI) Nearby(_ context.Context, lat, lng, radius float64) ([]types.Place, error) {
	f.gotRadius = radius
	return f.places, f.err
}

func (f *fakePlacesAPI) Autocomplete(_ context.Context, input string) ([]places.Prediction, error) {
	return f.predictions, f.err
}

func TestNearbyHandler(t *testing.T) {
	api := &fakePlacesAPI{places: []types.Place{{ID: "p1", Name: "Bar"}}}
	h := NewPlacesHandlers(api, 5000)

	req := httptest.NewRequest(http.MethodGet, "/api/places/nearby?lat=40&lng=-3.7", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5000.0, api.gotRadius, "missing radius uses the default")

	var resp struct {
		Places []types.Place `json:"places"`
		Count  int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "p1", resp.Places[0].ID)
}

func TestNearbyHandlerMissingCoords(t *testing.T) {
	h := NewPlacesHandlers(&fakePlacesAPI{}, 5000)

	req := httptest.NewRequest(http.MethodGet, "/api/places/nearby?lat=40", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyHandlerUpstreamFailure(t *testing.T) {
	h := NewPlacesHandlers(&fakePlacesAPI{err: errors.New("boom")}, 5000)

	req := httptest.NewRequest(http.MethodGet, "/api/places/nearby?lat=40&lng=-3.7", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAutocompleteHandler(t *testing.T) {
	api := &fakePlacesAPI{predictions: []places.Prediction{{PlaceID: "p1", Description: "Bar Central"}}}
	h := NewPlacesHandlers(api, 5000)

	req := httptest.NewRequest(http.MethodGet, "/api/places/autocomplete?input=bar", nil)
	rec := httptest.NewRecorder()
	h.Autocomplete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Predictions []places.Prediction `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Predictions, 1)
	assert.Equal(t, "Bar Central", resp.Predictions[0].Description)
}

func TestAutocompleteHandlerMissingInput(t *testing.T) {
	h := NewPlacesHandlers(&fakePlacesAPI{}, 5000)

	req := httptest.NewRequest(http.MethodGet, "/api/places/autocomplete", nil)
	rec := httptest.NewRecorder()
	h.Autocomplete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
