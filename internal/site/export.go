package site

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/interactions-rest/blog/internal/content"
	"github.com/interactions-rest/blog/pkg/feed"
	"github.com/interactions-rest/blog/pkg/filesystem"
)

// Export renders the whole site to static files under outDir: the index
// page, one page per post, and the RSS feed.
func Export(outDir string, store *content.Store, renderer *Renderer, generator *feed.Generator, baseURL string) error {
	var buf bytes.Buffer
	if err := renderer.RenderIndex(&buf, store.Posts()); err != nil {
		return err
	}
	if err := filesystem.WriteFile(filepath.Join(outDir, "index.html"), buf.Bytes()); err != nil {
		return err
	}

	for _, post := range store.Posts() {
		buf.Reset()
		if err := renderer.RenderPost(&buf, &post); err != nil {
			return fmt.Errorf("failed to render post %s: %w", post.Slug, err)
		}

		path := filepath.Join(outDir, "blog", post.Slug, "index.html")
		if err := filesystem.WriteFile(path, buf.Bytes()); err != nil {
			return err
		}
	}

	items := store.FeedItems(baseURL)
	if err := generator.Validate(items); err != nil {
		return fmt.Errorf("feed validation failed: %w", err)
	}
	if err := generator.SaveToFile(items, filepath.Join(outDir, "feed", "blog.xml")); err != nil {
		return err
	}

	slog.Info("Site exported", "dir", outDir, "posts", store.Len())
	return nil
}
