package content

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// Store is a read-only index of every valid post in the content directory.
// It is built once at startup and shared by all requests without locking.
type Store struct {
	posts  []Post
	bySlug map[string]*Post
}

// Load reads every Markdown file under dir and builds the post index.
//
// Files that cannot be read, have unparseable front-matter, or are missing a
// required field (title, publishedAt) are excluded with a logged warning;
// loading continues with the remaining files. An unreadable directory is a
// hard error.
func Load(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", dir, err)
	}

	store := &Store{bySlug: make(map[string]*Post)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Skipping unreadable content file", "path", path, "error", err)
			continue
		}

		post, err := parsePost(entry.Name(), data)
		if err != nil {
			slog.Warn("Skipping invalid content file", "path", path, "error", err)
			continue
		}

		store.posts = append(store.posts, post)
	}

	// Newest first; slug breaks ties so the order is stable across loads.
	sort.Slice(store.posts, func(i, j int) bool {
		a, b := store.posts[i], store.posts[j]
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		return a.Slug < b.Slug
	})

	for i := range store.posts {
		store.bySlug[store.posts[i].Slug] = &store.posts[i]
	}

	slog.Debug("Loaded content store", "dir", dir, "posts", len(store.posts))
	return store, nil
}

// parsePost parses a single content file into a Post. The slug and URL are
// derived from the file name.
func parsePost(filename string, data []byte) (Post, error) {
	var meta matter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("failed to parse front-matter: %w", err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return Post{}, fmt.Errorf("title is missing")
	}

	publishedAt, err := parsePublishedAt(meta.PublishedAt)
	if err != nil {
		return Post{}, err
	}

	rendered, err := renderHTML(body)
	if err != nil {
		return Post{}, fmt.Errorf("failed to render Markdown: %w", err)
	}

	slug := strings.TrimSuffix(filename, ".md")
	return Post{
		Slug:        slug,
		Title:       meta.Title,
		PublishedAt: publishedAt,
		URL:         "/blog/" + slug,
		Image:       meta.Image,
		Category:    meta.Category,
		Layout:      meta.Layout,
		Body:        body,
		HTML:        template.HTML(rendered),
		Excerpt:     Excerpt(rendered, excerptLength),
	}, nil
}

// Posts returns all posts, newest first. Callers must not modify the
// returned slice.
func (s *Store) Posts() []Post {
	return s.posts
}

// BySlug looks up a post by its slug.
func (s *Store) BySlug(slug string) (*Post, bool) {
	post, ok := s.bySlug[slug]
	return post, ok
}

// Len returns the number of posts in the index.
func (s *Store) Len() int {
	return len(s.posts)
}
