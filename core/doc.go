// Package core contains the business logic for the search frontend.
// It is framework-agnostic: nothing in core knows about HTTP routing,
// templates or the concrete upstream transport.
//
// The core package is organized into several sub-packages:
//
// - domain: Plain models (Post, Subreddit, SearchParams, SearchResultView, Preferences)
// - search: Parameter extraction, the two upstream lookups and the search service
// - errors: Custom error types for upstream, validation and lookup failures
// - interfaces: Contracts for external dependencies (upstream JSON, HTTP, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces.Dependencies
// - Business logic is testable in isolation with hand-written mocks
// - The subreddit lookup is best effort; only the content search can fail a request
//
// # Usage Example
//
//	import (
//	    "search-frontend-api/core/domain"
//	    "search-frontend-api/core/interfaces"
//	    "search-frontend-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    Upstream: myFetcher, // implements interfaces.JSONFetcher
//	    Logger:   myLogger,  // implements interfaces.Logger
//	}
//
//	service := search.NewSearchService(deps, flags)
//	view, err := service.Search(ctx, domain.SearchRequest{
//	    Sub:      "golang",
//	    RawQuery: "q=generics&restrict_sr=on",
//	})
package core
