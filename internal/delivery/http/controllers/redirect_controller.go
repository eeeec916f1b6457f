package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/choraria/devfest/internal/domain"
)

// Cache directives for the redirect path. A resolved redirect is safe to
// cache for an hour and serve stale for a day; a miss must not be cached or
// a later seeding of that slug would stay invisible.
const (
	cacheControlHit  = "public, s-maxage=3600, stale-while-revalidate=86400"
	cacheControlMiss = "no-cache"
)

type RedirectController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewRedirectController(logger *slog.Logger, svc domain.DirectoryService) *RedirectController {
	return &RedirectController{
		Logger:  logger,
		Service: svc,
	}
}

// Redirect godoc
// @Summary Redirect a slug to its destination URL
// @Description Resolves the slug against the directory and issues a 302 to the event's destination URL. Unknown slugs redirect to the home page with a notFound query parameter; a store outage redirects home with error=true.
// @Tags redirects
// @Param slug path string true "Event slug"
// @Success 302 {string} string "Location header carries the destination"
// @Router /{slug} [get]
func (c *RedirectController) Redirect(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	destination, err := c.Service.Resolve(r.Context(), slug)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w.Header().Set("Cache-Control", cacheControlMiss)
		http.Redirect(w, r, "/?notFound="+url.QueryEscape(slug), http.StatusFound)
	case err != nil:
		c.Logger.ErrorContext(r.Context(), "resolve failed", "slug", slug, "err", err)
		w.Header().Set("Cache-Control", cacheControlMiss)
		http.Redirect(w, r, "/?error=true", http.StatusFound)
	default:
		w.Header().Set("Cache-Control", cacheControlHit)
		http.Redirect(w, r, destination, http.StatusFound)
	}
}
