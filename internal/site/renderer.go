// Package site renders blog pages from the embedded HTML templates and
// exports the whole site as static files.
package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/interactions-rest/blog/internal/content"
	"github.com/interactions-rest/blog/templates"
)

// Meta holds site-wide values available to every template.
type Meta struct {
	Title       string
	Description string
	BaseURL     string
}

// Renderer renders blog pages from the embedded templates.
type Renderer struct {
	templates map[string]*template.Template
	site      Meta
}

type indexData struct {
	Site  Meta
	Posts []content.Post
}

type postData struct {
	Site Meta
	Post *content.Post
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	}
}

// NewRenderer parses every embedded template and returns a Renderer bound to
// the given site metadata.
func NewRenderer(site Meta) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		site:      site,
	}

	entries, err := fs.ReadDir(templates.EmbeddedTemplates, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(entry.Name()).Funcs(templateFuncs()).ParseFS(templates.EmbeddedTemplates, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}

		r.templates[name] = tmpl
		slog.Debug("Loaded template", "name", name)
	}

	return r, nil
}

// RenderIndex renders the post list page.
func (r *Renderer) RenderIndex(w io.Writer, posts []content.Post) error {
	return r.render(w, "index", indexData{Site: r.site, Posts: posts})
}

// RenderPost renders a single post page.
func (r *Renderer) RenderPost(w io.Writer, post *content.Post) error {
	return r.render(w, "post", postData{Site: r.site, Post: post})
}

func (r *Renderer) render(w io.Writer, name string, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return nil
}
