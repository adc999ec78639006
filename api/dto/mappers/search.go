// ABOUTME: Mappers for converting search domain models to response DTOs
// ABOUTME: Keeps the JSON surface decoupled from the core types

package mappers

import (
	"search-frontend-api/api/dto/responses"
	"search-frontend-api/core/domain"
)

// ToSearchResponse converts a search result view to a response DTO
func ToSearchResponse(view *domain.SearchResultView) *responses.SearchResponse {
	if view == nil {
		return nil
	}

	posts := make([]responses.PostResponse, len(view.Posts))
	for i, post := range view.Posts {
		posts[i] = ToPostResponse(post)
	}

	subreddits := make([]responses.SubredditResponse, len(view.Subreddits))
	for i, sub := range view.Subreddits {
		subreddits[i] = responses.SubredditResponse{
			Name:        sub.Name,
			URL:         sub.URL,
			Description: sub.Description,
			Subscribers: sub.Subscribers,
		}
	}

	return &responses.SearchResponse{
		Sub: view.Sub,
		Params: responses.SearchParamsResponse{
			// JSON clients get the text as typed, not the markup-ready form
			Q:          view.Params.Text,
			Sort:       view.Params.Sort,
			T:          view.Params.T,
			Before:     view.Params.Before,
			After:      view.Params.After,
			RestrictSR: view.Params.RestrictSR,
		},
		Posts:      posts,
		Subreddits: subreddits,
	}
}

// ToPostResponse converts a domain post to a response DTO.
// Placeholder thumbnails are dropped.
func ToPostResponse(post domain.Post) responses.PostResponse {
	resp := responses.PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Author:      post.Author,
		Subreddit:   post.Subreddit,
		Permalink:   post.Permalink,
		URL:         post.URL,
		Domain:      post.Domain,
		Flair:       post.Flair,
		Score:       post.Score,
		NumComments: post.NumComments,
		Created:     post.Created,
		NSFW:        post.NSFW,
		IsSelf:      post.IsSelf,
	}
	if post.HasThumbnail() {
		resp.Thumbnail = post.Thumbnail
	}
	return resp
}
