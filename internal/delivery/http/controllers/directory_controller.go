package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/choraria/devfest/internal/delivery/http/helpers"
	"github.com/choraria/devfest/internal/domain"
)

type DirectoryController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewDirectoryController(logger *slog.Logger, svc domain.DirectoryService) *DirectoryController {
	return &DirectoryController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List all directory entries
// @Description Returns the full directory as a bare JSON array, optionally filtered by a case-insensitive substring over city, chapter, name, slug and country, and sorted by date or location. Responses carry an hour-scale cache directive.
// @Tags redirects
// @Produce json
// @Param q query string false "Substring filter"
// @Param sort query string false "Sort key: date or location"
// @Param order query string false "asc (default) or desc"
// @Success 200 {array} domain.Entry
// @Failure 500 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /api/redirects [get]
func (c *DirectoryController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := domain.ListOptions{
		Filter:     q.Get("q"),
		Descending: q.Get("order") == "desc",
	}
	switch q.Get("sort") {
	case "":
	case string(domain.SortByDate):
		opts.SortBy = domain.SortByDate
	case string(domain.SortByLocation):
		opts.SortBy = domain.SortByLocation
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "sort must be date or location")
		return
	}

	entries, err := c.Service.ListAll(r.Context(), opts)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeStoreUnavailable, "failed to fetch redirects")
		return
	}
	w.Header().Set("Cache-Control", helpers.CacheControlListing)
	helpers.WriteJSONArray(w, http.StatusOK, entries)
}

// NearestResponse is the response body for GET /api/redirects/nearest.
// Center is the mean coordinate of the ranked results, for map centering.
type NearestResponse struct {
	Center  *domain.Coordinate   `json:"center"`
	Results []domain.RankedEntry `json:"results"`
}

// NearestSuccessResponse is the success envelope for GET /api/redirects/nearest (200).
type NearestSuccessResponse struct {
	Data  NearestResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Nearest godoc
// @Summary Rank events by proximity to a coordinate
// @Description Returns the k located events closest to the observer coordinate, ascending by great-circle distance, each with its distance in kilometers. k defaults to 5.
// @Tags redirects
// @Produce json
// @Param lat query number true "Observer latitude in degrees"
// @Param lng query number true "Observer longitude in degrees"
// @Param k query integer false "Number of results (default 5)"
// @Success 200 {object} controllers.NearestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /api/redirects/nearest [get]
func (c *DirectoryController) Nearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "lat and lng are required numbers")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "lat/lng out of range")
		return
	}
	k := 0
	if s := q.Get("k"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "k must be a positive integer")
			return
		}
		k = v
	}

	ranked, err := c.Service.Nearest(r.Context(), domain.Coordinate{Lat: lat, Lng: lng}, k)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeStoreUnavailable, "failed to fetch redirects")
			return
		}
		c.Logger.ErrorContext(r.Context(), "nearest failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	resp := NearestResponse{Results: ranked}
	entries := make([]*domain.Entry, 0, len(ranked))
	for _, re := range ranked {
		entries = append(entries, re.Entry)
	}
	if center, ok := c.Service.BoundingCenter(entries); ok {
		resp.Center = &center
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
