// ABOUTME: Response DTOs for the JSON search endpoints
// ABOUTME: Mirrors the data rendered on the HTML search page

package responses

import "time"

// SearchResponse is the JSON form of a search result page
type SearchResponse struct {
	Sub        string               `json:"sub,omitempty" doc:"Subreddit scope taken from the path"`
	Params     SearchParamsResponse `json:"params" doc:"Normalized search parameters"`
	Posts      []PostResponse       `json:"posts" doc:"Matching posts"`
	Subreddits []SubredditResponse  `json:"subreddits" doc:"Suggested communities, empty when unavailable"`
}

// SearchParamsResponse describes the normalized query and paging cursors
type SearchParamsResponse struct {
	Q          string `json:"q" doc:"Search text"`
	Sort       string `json:"sort" doc:"Result ordering"`
	T          string `json:"t,omitempty" doc:"Time range filter"`
	Before     string `json:"before,omitempty" doc:"Cursor the caller arrived with"`
	After      string `json:"after,omitempty" doc:"Cursor of the next page"`
	RestrictSR string `json:"restrict_sr,omitempty" doc:"Non-empty when the search is scoped to the subreddit"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID          string    `json:"id" doc:"Post identifier"`
	Title       string    `json:"title" doc:"Post title"`
	Author      string    `json:"author" doc:"Author username"`
	Subreddit   string    `json:"subreddit" doc:"Subreddit the post belongs to"`
	Permalink   string    `json:"permalink" doc:"Path of the comment page"`
	URL         string    `json:"url" doc:"Link target"`
	Domain      string    `json:"domain,omitempty" doc:"Domain of the link target"`
	Thumbnail   string    `json:"thumbnail,omitempty" doc:"Thumbnail image URL"`
	Flair       string    `json:"flair,omitempty" doc:"Link flair text"`
	Score       int64     `json:"score" doc:"Post score"`
	NumComments int64     `json:"num_comments" doc:"Number of comments"`
	Created     time.Time `json:"created" doc:"Creation time"`
	NSFW        bool      `json:"nsfw" doc:"Marked as adult content"`
	IsSelf      bool      `json:"is_self" doc:"Text post without external link"`
}

// SubredditResponse represents a suggested community
type SubredditResponse struct {
	Name        string `json:"name" doc:"Prefixed display name"`
	URL         string `json:"url" doc:"Community path"`
	Description string `json:"description,omitempty" doc:"Public description"`
	Subscribers int64  `json:"subscribers" doc:"Subscriber count"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok" doc:"Service status"`
}
