// Package main provides the CLI entry point for the blog.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/interactions-rest/blog/internal/config"
	"github.com/interactions-rest/blog/internal/content"
	"github.com/interactions-rest/blog/internal/server"
	"github.com/interactions-rest/blog/internal/site"
	"github.com/interactions-rest/blog/pkg/feed"
	"github.com/interactions-rest/blog/pkg/preview"
)

// CLI structure
var CLI struct {
	Config string `help:"Configuration file path" default:"config.yaml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Serve struct {
		Addr string `help:"Listen address override" short:"a"`
	} `cmd:"serve" help:"Serve the blog and RSS feed over HTTP."`

	Build struct {
		Outdir string `help:"Output directory override" short:"o"`
	} `cmd:"build" help:"Render the site and feed to static files."`

	Preview struct{} `cmd:"preview" help:"Preview posts interactively."`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Configure logging level based on debug flag
	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := content.Load(cfg.Site.ContentDir)
	if err != nil {
		slog.Error("Failed to load content store", "dir", cfg.Site.ContentDir, "error", err)
		os.Exit(1)
	}

	generator := feed.NewGenerator(cfg.Site.Title, cfg.Site.Description, cfg.Site.BaseURL)

	renderer, err := site.NewRenderer(site.Meta{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
	})
	if err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "serve":
		addr := cfg.Server.ListenAddr
		if CLI.Serve.Addr != "" {
			addr = CLI.Serve.Addr
		}

		app := server.New(&server.Config{
			Store:     store,
			Renderer:  renderer,
			Generator: generator,
			BaseURL:   cfg.Site.BaseURL,
		})

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-quit
			slog.Info("Shutting down server")
			if err := app.Shutdown(); err != nil {
				slog.Error("Shutdown failed", "error", err)
			}
		}()

		slog.Info("Serving blog", "addr", addr, "posts", store.Len())
		if err := app.Listen(addr); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}

	case "build":
		outDir := cfg.Build.OutputDir
		if CLI.Build.Outdir != "" {
			outDir = CLI.Build.Outdir
		}

		if err := site.Export(outDir, store, renderer, generator, cfg.Site.BaseURL); err != nil {
			slog.Error("Failed to build site", "error", err)
			os.Exit(1)
		}

	case "preview":
		if err := preview.Run(store.Posts(), cfg.Site.Title, cfg.Site.BaseURL, generator); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}

	default:
		panic(ctx.Command())
	}
}
