// ABOUTME: Paginated content search against the upstream listing API
// ABOUTME: Decodes listing children into posts and returns the trailing cursor

package search

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"search-frontend-api/core/domain"
	coreerrors "search-frontend-api/core/errors"
	"search-frontend-api/core/interfaces"
)

// PostSearcher runs content searches through the upstream JSON API
type PostSearcher struct {
	deps interfaces.Dependencies
}

// NewPostSearcher creates a new post searcher
func NewPostSearcher(deps interfaces.Dependencies) *PostSearcher {
	return &PostSearcher{
		deps: deps,
	}
}

// FetchPosts fetches one page of posts for path. An empty after starts from the first page.
// The returned cursor is empty when upstream reports no further pages.
func (p *PostSearcher) FetchPosts(ctx context.Context, path, after string) ([]domain.Post, string, error) {
	if p.deps.Upstream == nil {
		return nil, "", errors.New("upstream client not configured")
	}

	body, err := p.deps.Upstream.FetchJSON(ctx, pagePath(path, after))
	if err != nil {
		return nil, "", err
	}

	return parseListing(body)
}

func pagePath(path, after string) string {
	if after == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "after=" + url.QueryEscape(after)
}

func parseListing(body []byte) ([]domain.Post, string, error) {
	listing := gjson.GetBytes(body, "data")
	children := listing.Get("children")
	if !children.IsArray() {
		return nil, "", &coreerrors.ExternalAPIError{
			API:     "reddit",
			Message: "failed to parse page JSON data",
		}
	}

	entries := children.Array()
	posts := make([]domain.Post, 0, len(entries))
	for _, child := range entries {
		data := child.Get("data")
		if !data.IsObject() {
			continue
		}
		posts = append(posts, parsePost(data))
	}

	return posts, listing.Get("after").String(), nil
}

func parsePost(data gjson.Result) domain.Post {
	post := domain.Post{
		ID:          data.Get("id").String(),
		Title:       data.Get("title").String(),
		Author:      data.Get("author").String(),
		Subreddit:   data.Get("subreddit").String(),
		Permalink:   data.Get("permalink").String(),
		URL:         data.Get("url").String(),
		Domain:      data.Get("domain").String(),
		Thumbnail:   data.Get("thumbnail").String(),
		Flair:       data.Get("link_flair_text").String(),
		Score:       data.Get("score").Int(),
		NumComments: data.Get("num_comments").Int(),
		NSFW:        data.Get("over_18").Bool(),
		IsSelf:      data.Get("is_self").Bool(),
	}

	if created := data.Get("created_utc"); created.Type == gjson.Number {
		sec, frac := math.Modf(created.Num)
		post.Created = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	}

	return post
}
