// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the search collaborators and the search service itself

package interfaces

import (
	"context"

	"search-frontend-api/core/domain"
)

// PostFetcher runs a paginated content search.
// An empty after token starts a fresh search. The returned cursor is empty on the last page.
type PostFetcher interface {
	FetchPosts(ctx context.Context, path, after string) ([]domain.Post, string, error)
}

// SubredditSearcher looks up communities matching a free-text query.
// It never fails; any problem yields an empty slice.
type SubredditSearcher interface {
	SearchSubreddits(ctx context.Context, query string) []domain.Subreddit
}

// SearchService assembles a complete search result view
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResultView, error)
}
