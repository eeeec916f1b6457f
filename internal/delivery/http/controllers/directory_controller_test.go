package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choraria/devfest/internal/delivery/http/helpers"
	"github.com/choraria/devfest/internal/domain"
)

func TestList_ReturnsBareArray(t *testing.T) {
	svc := &fakeDirectoryService{
		listAllResult: []*domain.Entry{
			{Slug: "berlin", DestinationURL: "https://devfest.berlin"},
			{Slug: "nairobi", DestinationURL: "https://devfest.nairobi"},
		},
	}
	c := NewDirectoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects", nil)
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, helpers.CacheControlListing, rr.Header().Get("Cache-Control"))

	var entries []*domain.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "berlin", entries[0].Slug)
}

func TestList_PassesFilterAndSort(t *testing.T) {
	svc := &fakeDirectoryService{listAllResult: []*domain.Entry{}}
	c := NewDirectoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects?q=kenya&sort=date&order=desc", nil)
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ListOptions{Filter: "kenya", SortBy: domain.SortByDate, Descending: true}, svc.lastListOpts)
}

func TestList_RejectsUnknownSort(t *testing.T) {
	c := NewDirectoryController(testLogger, &fakeDirectoryService{})
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects?sort=popularity", nil)
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestList_StoreUnavailable(t *testing.T) {
	svc := &fakeDirectoryService{listAllErr: domain.ErrStoreUnavailable}
	c := NewDirectoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects", nil)
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeStoreUnavailable, resp.Error.Code)
}

func TestNearest(t *testing.T) {
	lat, lng := 48.8566, 2.3522
	svc := &fakeDirectoryService{
		nearestResult: []domain.RankedEntry{
			{
				Entry:      &domain.Entry{Slug: "paris", DestinationURL: "https://p.example", Latitude: &lat, Longitude: &lng},
				DistanceKm: 343.5,
			},
		},
	}
	c := NewDirectoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects/nearest?lat=51.5074&lng=-0.1278&k=2", nil)
	rr := httptest.NewRecorder()
	c.Nearest(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.Coordinate{Lat: 51.5074, Lng: -0.1278}, svc.lastObserver)
	assert.Equal(t, 2, svc.lastK)

	var resp NearestSuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "paris", resp.Data.Results[0].Entry.Slug)
	assert.InDelta(t, 343.5, resp.Data.Results[0].DistanceKm, 0.01)
	require.NotNil(t, resp.Data.Center)
	assert.InDelta(t, lat, resp.Data.Center.Lat, 0.0001)
}

func TestNearest_MissingCoordinates(t *testing.T) {
	c := NewDirectoryController(testLogger, &fakeDirectoryService{})
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects/nearest?lat=51.5", nil)
	rr := httptest.NewRecorder()
	c.Nearest(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNearest_OutOfRange(t *testing.T) {
	c := NewDirectoryController(testLogger, &fakeDirectoryService{})
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects/nearest?lat=95&lng=10", nil)
	rr := httptest.NewRecorder()
	c.Nearest(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNearest_NoLocatedEntries(t *testing.T) {
	svc := &fakeDirectoryService{nearestResult: []domain.RankedEntry{}}
	c := NewDirectoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects/nearest?lat=0&lng=0", nil)
	rr := httptest.NewRecorder()
	c.Nearest(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp NearestSuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Results)
	assert.Nil(t, resp.Data.Center)
}

func TestNearest_StoreUnavailable(t *testing.T) {
	svc := &fakeDirectoryService{nearestErr: domain.ErrStoreUnavailable}
	c := NewDirectoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/redirects/nearest?lat=0&lng=0", nil)
	rr := httptest.NewRecorder()
	c.Nearest(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
