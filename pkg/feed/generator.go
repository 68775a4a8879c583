package feed

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gorilla/feeds"

	"github.com/interactions-rest/blog/pkg/filesystem"
)

// Generate creates an RSS feed descriptor from the provided items. Item
// order is preserved. The channel carries no build timestamp so repeated
// generation over unchanged items produces identical output.
func (g *Generator) Generate(items []Item) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       g.Title,
		Link:        &feeds.Link{Href: g.Link},
		Description: g.Description,
	}

	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Description: item.Description,
			Created:     item.Created,
			Id:          item.ID,
		})
	}

	slog.Debug("Generated feed", "items", len(feed.Items))
	return feed
}

// WriteRSS serializes the items as an RSS 2.0 document to w.
func (g *Generator) WriteRSS(w io.Writer, items []Item) error {
	if err := g.Generate(items).WriteRss(w); err != nil {
		return fmt.Errorf("failed to write RSS feed: %w", err)
	}
	return nil
}

// SaveToFile writes the RSS document for the items to outputPath, creating
// the output directory if needed.
func (g *Generator) SaveToFile(items []Item, outputPath string) error {
	if err := filesystem.EnsureDirectoryExists(outputPath); err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := g.WriteRSS(file, items); err != nil {
		return err
	}

	slog.Info("Feed saved successfully", "path", outputPath, "items", len(items))
	return nil
}

// Validate checks the channel metadata and per-item required fields. A feed
// with zero items is valid: an empty content store still yields a
// well-formed document.
func (g *Generator) Validate(items []Item) error {
	if g.Title == "" {
		return fmt.Errorf("feed title is empty")
	}

	if g.Link == "" {
		return fmt.Errorf("feed link is empty")
	}

	if g.Description == "" {
		return fmt.Errorf("feed description is empty")
	}

	for i, item := range items {
		if err := validateItem(item); err != nil {
			return fmt.Errorf("item %d validation failed: %w", i, err)
		}
	}

	return nil
}

func validateItem(item Item) error {
	if item.Title == "" {
		return fmt.Errorf("item title is empty")
	}

	if item.Link == "" {
		return fmt.Errorf("item link is empty")
	}

	if item.Created.IsZero() {
		return fmt.Errorf("item publish date is empty")
	}

	return nil
}
