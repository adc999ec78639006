// ABOUTME: Subreddit suggestion lookup shown next to unrestricted searches
// ABOUTME: Best effort: every failure is mapped to an empty suggestion list in one place

package search

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
	"search-frontend-api/core/domain"
	"search-frontend-api/core/interfaces"
)

// suggestionLimit is the maximum number of subreddits requested from upstream
const suggestionLimit = 3

// SubredditSuggester finds communities matching a search query
type SubredditSuggester struct {
	deps interfaces.Dependencies
}

// NewSubredditSuggester creates a new subreddit suggester
func NewSubredditSuggester(deps interfaces.Dependencies) *SubredditSuggester {
	return &SubredditSuggester{
		deps: deps,
	}
}

// SearchSubreddits returns up to three subreddits matching query.
// This is the only place where lookup errors are absorbed: any failure yields an empty slice.
func (s *SubredditSuggester) SearchSubreddits(ctx context.Context, query string) []domain.Subreddit {
	subreddits, err := s.fetchSubreddits(ctx, query)
	if err != nil {
		// a cancelled lookup means the post search already failed
		if s.deps.Logger != nil && ctx.Err() == nil {
			s.deps.Logger.Warn("Subreddit suggestions unavailable", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
		return []domain.Subreddit{}
	}
	return subreddits
}

func (s *SubredditSuggester) fetchSubreddits(ctx context.Context, query string) ([]domain.Subreddit, error) {
	if s.deps.Upstream == nil {
		return nil, errors.New("upstream client not configured")
	}

	body, err := s.deps.Upstream.FetchJSON(ctx, SubredditSearchPath(query))
	if err != nil {
		return nil, err
	}

	return parseSubreddits(body)
}

// SubredditSearchPath builds the upstream subreddit lookup path.
// Spaces become '+'; no other character is escaped.
func SubredditSearchPath(query string) string {
	return NewQuery("/subreddits/search.json").
		Add("q", query, SpacesAsPlus).
		Add("limit", strconv.Itoa(suggestionLimit), Verbatim).
		String()
}

// parseSubreddits decodes a subreddit listing. Malformed entries are skipped one by one.
func parseSubreddits(body []byte) ([]domain.Subreddit, error) {
	children := gjson.GetBytes(body, "data.children")
	if !children.IsArray() {
		return nil, errors.New("subreddit listing has no data.children array")
	}

	entries := children.Array()
	subreddits := make([]domain.Subreddit, 0, len(entries))
	for _, child := range entries {
		if subreddit, ok := parseSubreddit(child.Get("data")); ok {
			subreddits = append(subreddits, subreddit)
		}
	}

	return subreddits, nil
}

// parseSubreddit requires a non-empty display_name_prefixed and url.
// public_description and subscribers are optional; a subscribers value that is
// present but not a non-negative number rejects the entry.
func parseSubreddit(data gjson.Result) (domain.Subreddit, bool) {
	name := data.Get("display_name_prefixed")
	link := data.Get("url")
	if name.Type != gjson.String || name.Str == "" || link.Type != gjson.String || link.Str == "" {
		return domain.Subreddit{}, false
	}

	subreddit := domain.Subreddit{
		Name: name.Str,
		URL:  link.Str,
	}

	if description := data.Get("public_description"); description.Type == gjson.String {
		subreddit.Description = description.Str
	}

	subscribers := data.Get("subscribers")
	switch subscribers.Type {
	case gjson.Null:
	case gjson.Number:
		count, ok := truncateCount(subscribers.Num)
		if !ok {
			return domain.Subreddit{}, false
		}
		subreddit.Subscribers = count
	default:
		return domain.Subreddit{}, false
	}

	return subreddit, true
}

// truncateCount converts an upstream float count to an integer, dropping any fraction
func truncateCount(f float64) (int64, bool) {
	if math.IsNaN(f) || f < 0 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
