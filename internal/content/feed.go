package content

import (
	"log/slog"

	"github.com/interactions-rest/blog/pkg/feed"
	"github.com/interactions-rest/blog/pkg/urlutils"
)

// FeedItems maps every post in the store to a feed item, preserving index
// order (newest first). Post URLs are resolved against baseURL so feed
// readers get absolute links.
func (s *Store) FeedItems(baseURL string) []feed.Item {
	items := make([]feed.Item, 0, len(s.posts))
	for _, post := range s.posts {
		link, err := urlutils.ResolveURL(baseURL, post.URL)
		if err != nil {
			slog.Warn("Failed to resolve post URL", "url", post.URL, "error", err)
			link = post.URL
		}

		items = append(items, feed.Item{
			Title:       post.Title,
			Link:        link,
			Description: post.Excerpt,
			Created:     post.PublishedAt,
			ID:          link,
		})
	}
	return items
}
