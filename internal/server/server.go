// Package server exposes the blog over HTTP: rendered pages and the RSS
// feed endpoint.
package server

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/interactions-rest/blog/internal/content"
	"github.com/interactions-rest/blog/internal/site"
	"github.com/interactions-rest/blog/pkg/feed"
)

// Config holds the collaborators the server routes dispatch to.
type Config struct {
	Store     *content.Store
	Renderer  *site.Renderer
	Generator *feed.Generator

	// BaseURL is the site base URL used to resolve post links in the feed.
	BaseURL string
}

// New returns a fiber.App serving the blog. The content store is immutable,
// so handlers share it without synchronization; the feed body is recomputed
// from the store on every request.
func New(config *Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "interactions-rest-blog",
		DisableStartupMessage: true,
	})

	// Request latency logging
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		slog.Info("Request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start))
		return err
	})

	app.Get("/feed/blog.xml", func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := config.Generator.WriteRSS(&buf, config.Store.FeedItems(config.BaseURL)); err != nil {
			slog.Error("Failed to generate feed", "error", err)
			return fiber.ErrInternalServerError
		}

		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.Send(buf.Bytes())
	})

	app.Get("/", func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := config.Renderer.RenderIndex(&buf, config.Store.Posts()); err != nil {
			slog.Error("Failed to render index", "error", err)
			return fiber.ErrInternalServerError
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	app.Get("/blog/:slug", func(c *fiber.Ctx) error {
		post, ok := config.Store.BySlug(c.Params("slug"))
		if !ok {
			return fiber.ErrNotFound
		}

		var buf bytes.Buffer
		if err := config.Renderer.RenderPost(&buf, post); err != nil {
			slog.Error("Failed to render post", "slug", post.Slug, "error", err)
			return fiber.ErrInternalServerError
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	return app
}
