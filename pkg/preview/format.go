// Package preview provides an interactive post preview TUI for checking
// front-matter and feed output before publishing.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/interactions-rest/blog/internal/content"
	"github.com/interactions-rest/blog/pkg/feed"
)

// wrapText wraps text to the specified width, breaking at word boundaries.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = 70
	}

	var result strings.Builder
	var line strings.Builder
	lineLen := 0

	words := strings.Fields(text)
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			result.WriteString(line.String())
			result.WriteString("\n")
			line.Reset()
			lineLen = 0
		}

		if lineLen > 0 {
			line.WriteString(" ")
			lineLen++
		}

		line.WriteString(word)
		lineLen += len(word)

		if i == len(words)-1 {
			result.WriteString(line.String())
		}
	}

	return result.String()
}

// FormatCompactListItem formats a single post in compact list format.
// Example: " 1. 2022-02-01  World [workers]"
func FormatCompactListItem(index int, post content.Post) string {
	title := post.Title
	const maxTitleLength = 70
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength-3] + "..."
	}

	line := fmt.Sprintf("%2d. %s  %s", index+1, post.PublishedAt.Format("2006-01-02"), title)
	if post.Category != "" {
		line += fmt.Sprintf(" [%s]", post.Category)
	}
	return line
}

// FormatDetailedItem formats a single post with all front-matter fields.
func FormatDetailedItem(post content.Post) string {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")
	b.WriteString(fmt.Sprintf("Title: %s\n", post.Title))
	b.WriteString(fmt.Sprintf("URL: %s\n", post.URL))
	b.WriteString(fmt.Sprintf("Published: %s\n", post.PublishedAt.Format(time.DateOnly)))

	if post.Category != "" {
		b.WriteString(fmt.Sprintf("Category: %s\n", post.Category))
	}

	if post.Image != "" {
		b.WriteString(fmt.Sprintf("Image: %s\n", post.Image))
	}

	if post.Layout != "" {
		b.WriteString(fmt.Sprintf("Layout: %s\n", post.Layout))
	}

	if post.Excerpt != "" {
		b.WriteString(fmt.Sprintf("\nExcerpt:\n%s\n", wrapText(post.Excerpt, 70)))
	}

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")

	return b.String()
}

// FormatXMLItem renders the RSS document for a single post so authors can
// inspect the exact feed output.
func FormatXMLItem(post content.Post, generator *feed.Generator, baseURL string) string {
	var buf strings.Builder
	items := []feed.Item{
		{
			Title:       post.Title,
			Link:        baseURL + post.URL,
			Description: post.Excerpt,
			Created:     post.PublishedAt,
			ID:          baseURL + post.URL,
		},
	}

	if err := generator.WriteRSS(&buf, items); err != nil {
		return fmt.Sprintf("failed to render feed item: %v", err)
	}

	return buf.String()
}
