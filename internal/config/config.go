// Package config loads and validates the blog configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	blogerrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
)

// DefaultPath is the configuration file consulted when no -c flag is given.
const DefaultPath = "blog.yaml"

// Config represents the application configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
}

// SiteConfig carries the site identity rendered into every page.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Lang        string `yaml:"lang,omitempty"`
	Favicon     string `yaml:"favicon,omitempty"`
	// FontStylesheet, when set, is loaded with a preload-then-activate
	// pattern and a noscript fallback so text renders before the webfonts
	// arrive.
	FontStylesheet string `yaml:"font_stylesheet,omitempty"`
	Links          []Link `yaml:"links,omitempty"`
}

// Link is an outbound profile link shown in the page header.
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// ContentConfig locates the source material relative to the working directory.
type ContentConfig struct {
	PostsDir   string `yaml:"posts_dir,omitempty"`
	StaticDir  string `yaml:"static_dir,omitempty"`
	Stylesheet string `yaml:"stylesheet,omitempty"`
}

// SortOrder selects the home page ordering of posts.
type SortOrder string

const (
	SortNewestFirst SortOrder = "newest"
	SortOldestFirst SortOrder = "oldest"
)

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string    `yaml:"directory,omitempty"`
	Sort      SortOrder `yaml:"sort,omitempty"`
}

// NormalizeSortOrder lowercases the raw value and coerces anything
// unrecognized to newest-first.
func NormalizeSortOrder(raw SortOrder) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(string(raw)))) {
	case SortOldestFirst:
		return SortOldestFirst
	default:
		return SortNewestFirst
	}
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file.
//
// A missing file at the default path is not an error: the original tool ran
// with hardcoded directory names and no configuration at all, so we fall back
// to the built-in defaults. A missing file at an explicitly requested path is
// a configuration error.
func Load(configPath string) (*Config, error) {
	// Load .env files if present; existing process env wins.
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if configPath == DefaultPath {
			return Default(), nil
		}
		return nil, blogerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, blogerrors.Filesystem("read", configPath, err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, blogerrors.ConfigInvalid(configPath, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = "My Blog"
	}
	if c.Site.Description == "" {
		c.Site.Description = "A programming blog"
	}
	if c.Site.Lang == "" {
		c.Site.Lang = "en"
	}
	if c.Content.PostsDir == "" {
		c.Content.PostsDir = "posts"
	}
	if c.Content.StaticDir == "" {
		c.Content.StaticDir = "static"
	}
	if c.Content.Stylesheet == "" {
		c.Content.Stylesheet = "styles.css"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "build"
	}
	c.Output.Sort = NormalizeSortOrder(c.Output.Sort)
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Site: SiteConfig{
			Title:       "the blog",
			Description: "A cool and nice programming blog",
			Author:      "Jane Doe",
			Email:       "jane@example.com",
			Lang:        "en",
			Links: []Link{
				{Name: "github", URL: "https://github.com/janedoe"},
				{Name: "linkedin", URL: "https://linkedin.com/in/janedoe"},
			},
		},
		Content: ContentConfig{
			PostsDir:   "posts",
			StaticDir:  "static",
			Stylesheet: "styles.css",
		},
		Output: OutputConfig{
			Directory: "build",
			Sort:      SortNewestFirst,
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
