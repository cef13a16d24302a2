package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	outputDir := ResolveOutputDir(b.Output, cfg)
	return RunBuild(cfg, outputDir)
}

// RunBuild performs a single full build.
func RunBuild(cfg *config.Config, outputDir string) error {
	// Friendly user-facing messages on stdout; diagnostics go through slog.
	fmt.Println("Building site")

	slog.Info("Starting site build",
		"posts", cfg.Content.PostsDir,
		"output", outputDir,
		"sort", cfg.Output.Sort)

	gen, err := site.NewGenerator(cfg, outputDir)
	if err != nil {
		return err
	}
	if err := gen.Build(); err != nil {
		return err
	}

	fmt.Printf("Site written to %s\n", gen.OutputDir())
	return nil
}
