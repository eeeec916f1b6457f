// The devfest redirect directory server: resolves event slugs to their
// destination URLs and serves the directory listing and proximity APIs.
//
// @title DevFest Redirect Directory API
// @version 1.0
// @description Slug-addressable URL redirect directory for DevFest events.
// @BasePath /
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/choraria/devfest/config"
	_ "github.com/choraria/devfest/docs"
	delivery "github.com/choraria/devfest/internal/delivery/http"
	"github.com/choraria/devfest/internal/delivery/http/controllers"
	"github.com/choraria/devfest/internal/delivery/http/middleware"
	"github.com/choraria/devfest/internal/repository"
	"github.com/choraria/devfest/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger("devfest-server").Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger("devfest-server")

	store, closeStore, err := repository.NewStore(cfg)
	if err != nil {
		logger.Error("init store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer func() { _ = closeStore() }()

	directory := services.NewDirectoryService(store, logger, cfg.StoreTimeout)

	router := delivery.NewRouter(
		controllers.NewDirectoryController(logger, directory),
		controllers.NewRedirectController(logger, directory),
	)
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "port", cfg.Port, "driver", cfg.StoreDriver, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
