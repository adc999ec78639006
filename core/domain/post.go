// ABOUTME: Post domain model represents a single link or text submission
// ABOUTME: Returned by the content search and rendered as one search result row

package domain

import "time"

// Post is a single submission returned by a content search
type Post struct {
	ID          string
	Title       string
	Author      string
	Subreddit   string
	Permalink   string
	URL         string
	Domain      string
	Thumbnail   string
	Flair       string
	Score       int64
	NumComments int64
	Created     time.Time
	NSFW        bool
	IsSelf      bool
}

// HasThumbnail reports whether the thumbnail field holds an actual image URL.
// Upstream uses placeholder words such as "self", "default" or "nsfw" instead of URLs.
func (p Post) HasThumbnail() bool {
	switch p.Thumbnail {
	case "", "self", "default", "nsfw", "spoiler", "image":
		return false
	}
	return true
}
