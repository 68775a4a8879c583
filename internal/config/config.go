// Package config loads the blog's application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/interactions-rest/blog/pkg/filesystem"
	"github.com/interactions-rest/blog/pkg/urlutils"
)

// Config holds the central application configuration.
type Config struct {
	Site struct {
		// Feed channel metadata
		Title       string `mapstructure:"title"`
		Description string `mapstructure:"description"`

		// Base URL, consumed verbatim as the feed channel link
		BaseURL string `mapstructure:"base_url"`

		// Directory holding the Markdown content files
		ContentDir string `mapstructure:"content_dir"`
	} `mapstructure:"site"`

	Server struct {
		ListenAddr string `mapstructure:"listen_addr"`
	} `mapstructure:"server"`

	Build struct {
		OutputDir string `mapstructure:"output_dir"`
	} `mapstructure:"build"`
}

// LoadConfig loads the configuration from a file. A missing file is not an
// error; defaults apply for every unset key.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	// If path is relative, try the working directory first, then the
	// executable directory.
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			if execPath, err := filesystem.GetDefaultPath(path); err == nil {
				if _, err := os.Stat(execPath); err == nil {
					path = execPath
				}
			}
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("site.title", "Interactions.Rest Blog")
	v.SetDefault("site.description", "A blog about Workers and web development")
	v.SetDefault("site.base_url", "https://interactions.rest")
	v.SetDefault("site.content_dir", "content/blog")
	v.SetDefault("server.listen_addr", ":3000")
	v.SetDefault("build.output_dir", "public")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults cover everything
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if !urlutils.IsValidURL(config.Site.BaseURL) {
		return nil, fmt.Errorf("site.base_url %q is not a valid URL", config.Site.BaseURL)
	}

	return &config, nil
}
