package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coreerrors "search-frontend-api/core/errors"
	"search-frontend-api/core/interfaces"
)

const postListing = `{
	"kind": "Listing",
	"data": {
		"after": "t3_next",
		"children": [
			{"kind": "t3", "data": {
				"id": "abc",
				"title": "Cats are great",
				"author": "whiskers",
				"subreddit": "cats",
				"permalink": "/r/cats/comments/abc/cats_are_great/",
				"url": "https://i.example.com/cat.jpg",
				"domain": "i.example.com",
				"thumbnail": "https://b.thumbs.example.com/cat.jpg",
				"link_flair_text": "Photo",
				"score": 420,
				"num_comments": 69,
				"created_utc": 1700000000.0,
				"over_18": false,
				"is_self": false
			}},
			{"kind": "t3", "data": {
				"id": "def",
				"title": "Ask: best cat food?",
				"author": "kibble",
				"subreddit": "cats",
				"thumbnail": "self",
				"score": 3,
				"num_comments": 12,
				"created_utc": 1700000100,
				"over_18": true,
				"is_self": true
			}},
			{"kind": "more", "data": "not an object"}
		]
	}
}`

func TestFetchPosts_ParsesListing(t *testing.T) {
	fetcher := &mockJSONFetcher{
		fetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return []byte(postListing), nil
		},
	}
	searcher := NewPostSearcher(interfaces.Dependencies{Upstream: fetcher})

	posts, after, err := searcher.FetchPosts(context.Background(), "/search.json?q=cats", "")

	require.NoError(t, err)
	assert.Equal(t, "t3_next", after)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "abc", first.ID)
	assert.Equal(t, "Cats are great", first.Title)
	assert.Equal(t, "whiskers", first.Author)
	assert.Equal(t, "Photo", first.Flair)
	assert.Equal(t, int64(420), first.Score)
	assert.Equal(t, int64(69), first.NumComments)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), first.Created)
	assert.True(t, first.HasThumbnail())

	second := posts[1]
	assert.True(t, second.NSFW)
	assert.True(t, second.IsSelf)
	assert.False(t, second.HasThumbnail())

	assert.Equal(t, []string{"/search.json?q=cats"}, fetcher.requestedPaths())
}

func TestFetchPosts_NullAfterMeansLastPage(t *testing.T) {
	fetcher := &mockJSONFetcher{
		fetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return []byte(`{"data": {"after": null, "children": []}}`), nil
		},
	}
	searcher := NewPostSearcher(interfaces.Dependencies{Upstream: fetcher})

	posts, after, err := searcher.FetchPosts(context.Background(), "/search.json", "")

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, "", after)
}

func TestFetchPosts_AppendsPaginationToken(t *testing.T) {
	fetcher := &mockJSONFetcher{
		fetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return []byte(`{"data": {"children": []}}`), nil
		},
	}
	searcher := NewPostSearcher(interfaces.Dependencies{Upstream: fetcher})

	_, _, err := searcher.FetchPosts(context.Background(), "/search.json?q=cats", "t3_abc")
	require.NoError(t, err)
	_, _, err = searcher.FetchPosts(context.Background(), "/search.json", "t3_def")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/search.json?q=cats&after=t3_abc",
		"/search.json?after=t3_def",
	}, fetcher.requestedPaths())
}

func TestFetchPosts_UpstreamError(t *testing.T) {
	upstreamErr := &coreerrors.ExternalAPIError{API: "reddit", StatusCode: 503, Message: "Service Unavailable"}
	fetcher := &mockJSONFetcher{
		fetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return nil, upstreamErr
		},
	}
	searcher := NewPostSearcher(interfaces.Dependencies{Upstream: fetcher})

	posts, after, err := searcher.FetchPosts(context.Background(), "/search.json", "")

	assert.Nil(t, posts)
	assert.Equal(t, "", after)
	assert.True(t, errors.Is(err, upstreamErr))
}

func TestFetchPosts_MissingChildrenIsAnError(t *testing.T) {
	fetcher := &mockJSONFetcher{
		fetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return []byte(`{"kind": "Listing"}`), nil
		},
	}
	searcher := NewPostSearcher(interfaces.Dependencies{Upstream: fetcher})

	_, _, err := searcher.FetchPosts(context.Background(), "/search.json", "")

	require.Error(t, err)
	assert.True(t, coreerrors.IsExternalAPI(err))
	assert.Contains(t, err.Error(), "failed to parse page JSON data")
}

func TestFetchPosts_NoUpstreamConfigured(t *testing.T) {
	searcher := NewPostSearcher(interfaces.Dependencies{})

	_, _, err := searcher.FetchPosts(context.Background(), "/search.json", "")

	assert.Error(t, err)
}
