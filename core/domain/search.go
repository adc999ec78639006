// ABOUTME: Search domain models for the post search page and its subreddit suggestions
// ABOUTME: Defines normalized search parameters and the aggregate handed to renderers

package domain

// DefaultSort is applied when the caller leaves the sort parameter empty
const DefaultSort = "relevance"

// SearchParams holds the normalized query of a single search request
type SearchParams struct {
	// Q is the free-text query as displayed back to the caller
	Q string

	// Text is the free-text query exactly as the caller typed it
	Text string

	// Sort is the requested ordering; never empty after normalization
	Sort string

	// T is the time range filter (hour, day, week, month, year, all)
	T string

	// Before is the cursor used to page backwards
	Before string

	// After is the cursor used to page forwards
	After string

	// RestrictSR is non-empty when the search is scoped to a single subreddit
	RestrictSR string
}

// Restricted reports whether the caller scoped the search to one subreddit
func (p SearchParams) Restricted() bool {
	return p.RestrictSR != ""
}

// Subreddit is a community suggested alongside the search results
type Subreddit struct {
	// Name is the prefixed display name, e.g. "r/golang"
	Name string

	// URL is the community path, e.g. "/r/golang/"
	URL string

	// Description is the public description
	Description string

	// Subscribers is the subscriber count, always >= 0
	Subscribers int64
}

// SearchRequest is the inbound search request as seen by the core
type SearchRequest struct {
	// Sub is the subreddit scope taken from the path; empty means global search
	Sub string

	// RawQuery is the request's query string, without the leading '?'
	RawQuery string

	// Prefs are the caller's display preferences
	Prefs Preferences
}

// SearchResultView is everything a renderer needs to produce the search page
type SearchResultView struct {
	Posts      []Post
	Subreddits []Subreddit
	Sub        string
	Params     SearchParams
	Prefs      Preferences
}
