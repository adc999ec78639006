// Package api provides the HTTP layer for the search frontend.
// HTML pages are plain chi handlers; the JSON mirror uses the Huma framework
// for automatic OpenAPI documentation and request binding.
//
// # Architecture
//
// - server.go: Router, middleware and Huma API configuration
// - handlers/: HTML and JSON search handlers, health check, error mapping
// - views/: Embedded html/template renderer for the search and error pages
// - dto/: Response DTOs and the mappers that build them
// - middleware/: Request logging with request IDs
//
// # Routes
//
//	GET /search               HTML search page
//	GET /r/{sub}/search       HTML search page scoped to a subreddit
//	GET /api/search           JSON mirror (feature flag json_api)
//	GET /api/r/{sub}/search   JSON mirror scoped to a subreddit
//	GET /health               liveness
//	GET /openapi.json, /docs  generated documentation
//
// # Usage Example
//
//	_, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger: logger,
//	    Flags:  flags,
//	    Search: handlers.NewSearchHandler(searchService, renderer, logger),
//	})
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Content search failures become an HTML error page carrying the upstream
// message, or an RFC 7807 problem document on the JSON surface. Upstream 404
// and 429 pass through, upstream 5xx becomes 503, everything else is 500.
package api
