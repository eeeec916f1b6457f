package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/choraria/devfest/internal/delivery/http/controllers"
	"github.com/choraria/devfest/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// The catch-all slug redirect is registered last so fixed routes win.
func NewRouter(directoryController *controllers.DirectoryController, redirectController *controllers.RedirectController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /api/redirects", directoryController.List)
	mux.HandleFunc("GET /api/redirects/nearest", directoryController.Nearest)

	// Operational
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// The home page is served by the directory frontend; this process only
	// answers the fallback redirects with a small status document.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"service": "devfest-redirect-directory"})
	})

	// Public redirect: GET /{slug}
	mux.HandleFunc("GET /{slug}", redirectController.Redirect)

	return mux
}
