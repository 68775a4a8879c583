// Package feed builds and serializes the blog's RSS feed.
package feed

import "time"

// Generator holds channel-level feed metadata.
type Generator struct {
	Title       string
	Description string
	Link        string
}

// NewGenerator creates a new feed generator.
func NewGenerator(title, description, link string) *Generator {
	return &Generator{
		Title:       title,
		Description: description,
		Link:        link,
	}
}

// Item represents a feed item.
type Item struct {
	Title       string
	Link        string
	Description string
	Created     time.Time
	ID          string
}
