// Package content implements the blog's content store: a directory of
// Markdown files with YAML front-matter, loaded once at startup into an
// immutable in-memory index.
package content

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Post is a single blog post parsed from a content file.
type Post struct {
	Slug        string
	Title       string
	PublishedAt time.Time
	URL         string // site-relative path, e.g. /blog/hello
	Image       string
	Category    string
	Layout      string
	Body        []byte        // raw Markdown body
	HTML        template.HTML // rendered body
	Excerpt     string
}

// matter is the front-matter envelope recognized by the loader. Unknown keys
// are ignored. publishedAt is kept as a string so date parsing and validation
// stay in one place.
type matter struct {
	Title       string `yaml:"title"`
	PublishedAt string `yaml:"publishedAt"`
	Image       string `yaml:"image"`
	Category    string `yaml:"category"`
	Layout      string `yaml:"layout"`
}

// publishedAtLayouts are the accepted date formats, most specific first.
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parsePublishedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("publishedAt is missing")
	}

	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("publishedAt %q is not an ISO-8601 date", value)
}
