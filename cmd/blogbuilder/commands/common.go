// Package commands implements the blogbuilder CLI commands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"blog.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the site from posts, stylesheet, and static assets"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	New   NewCmd   `cmd:"" help:"Scaffold a new post file"`
	Watch WatchCmd `cmd:"" help:"Rebuild the site whenever source content changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ResolveOutputDir determines the final output directory.
// Priority: CLI flag > configured directory.
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	return cfg.Output.Directory
}
