// ABOUTME: Search service assembles the search result page from two upstream lookups
// ABOUTME: The content search is required; subreddit suggestions are best effort and run concurrently

package search

import (
	"context"

	"search-frontend-api/core/domain"
	"search-frontend-api/core/interfaces"
	"search-frontend-api/pkg/featureflags"
)

// SearchService orchestrates the content search and the subreddit suggestion lookup
type SearchService struct {
	posts      interfaces.PostFetcher
	subreddits interfaces.SubredditSearcher
	flags      featureflags.Manager
	logger     interfaces.Logger
}

// NewSearchService creates a search service backed by the upstream JSON API
func NewSearchService(deps interfaces.Dependencies, flags featureflags.Manager) *SearchService {
	return NewSearchServiceWith(NewPostSearcher(deps), NewSubredditSuggester(deps), flags, deps.Logger)
}

// NewSearchServiceWith creates a search service from explicit collaborators.
// flags and logger may be nil.
func NewSearchServiceWith(
	posts interfaces.PostFetcher,
	subreddits interfaces.SubredditSearcher,
	flags featureflags.Manager,
	logger interfaces.Logger,
) *SearchService {
	if logger == nil {
		logger = nopLogger{}
	}
	return &SearchService{
		posts:      posts,
		subreddits: subreddits,
		flags:      flags,
		logger:     logger,
	}
}

// Search runs the search described by req.
//
// The subreddit lookup is skipped when the caller restricted the search to one
// subreddit. Otherwise it runs on its own goroutine while the content search runs
// on the caller's. A content search error is returned as is and no view is built.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResultView, error) {
	params, path := ExtractParams(req)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so the lookup goroutine never blocks if the content search fails first
	suggestions := make(chan []domain.Subreddit, 1)
	if s.shouldSuggest(ctx, params) {
		go func(query string) {
			suggestions <- s.subreddits.SearchSubreddits(ctx, query)
		}(params.Q)
	} else {
		suggestions <- []domain.Subreddit{}
	}

	posts, after, err := s.posts.FetchPosts(ctx, path, "")
	if err != nil {
		s.logger.Error("Content search failed", map[string]interface{}{
			"sub":   req.Sub,
			"path":  path,
			"error": err.Error(),
		})
		return nil, err
	}

	subreddits := <-suggestions

	// Forward-only paging: the cursor that brought the caller here becomes "before"
	params.Before = params.After
	params.After = after
	params.Text = params.Q
	params.Q = DisplayQuery(params.Q)

	s.logger.Debug("Search completed", map[string]interface{}{
		"sub":        req.Sub,
		"sort":       params.Sort,
		"posts":      len(posts),
		"subreddits": len(subreddits),
	})

	return &domain.SearchResultView{
		Posts:      posts,
		Subreddits: subreddits,
		Sub:        req.Sub,
		Params:     params,
		Prefs:      req.Prefs,
	}, nil
}

func (s *SearchService) shouldSuggest(ctx context.Context, params domain.SearchParams) bool {
	if params.Restricted() || s.subreddits == nil {
		return false
	}
	if s.flags != nil && !s.flags.IsEnabled(ctx, featureflags.SubredditSuggestions) {
		return false
	}
	return true
}

// nopLogger discards everything; used when no logger is injected
type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
