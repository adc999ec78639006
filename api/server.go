// ABOUTME: Chi router and Huma API configuration and setup
// ABOUTME: Mounts the HTML search pages next to the documented JSON operations

package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"search-frontend-api/api/handlers"
	"search-frontend-api/api/middleware"
	"search-frontend-api/core/interfaces"
	"search-frontend-api/pkg/featureflags"
)

const (
	apiTitle   = "Search Frontend API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Flags gates optional surfaces. nil enables everything.
	Flags featureflags.Manager

	// Search serves the search pages and operations. nil mounts only health and docs.
	Search *handlers.SearchHandler
}

// NewAPI creates a Huma API instance with health and documentation endpoints only
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler())

	api := humachi.New(router, humaConfig())
	handlers.RegisterHealth(api)

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware and all routes configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be first
	router.Use(corsHandler())
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	api := humachi.New(router, humaConfig())
	handlers.RegisterHealth(api)

	if cfg.Search != nil {
		cfg.Search.RegisterPages(router)
		if cfg.Flags == nil || cfg.Flags.IsEnabled(context.Background(), featureflags.JSONAPI) {
			cfg.Search.RegisterRoutes(api)
		}
	}

	return api, router
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Post search with subreddit suggestions, served as HTML pages and JSON"
	return config
}

func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}
