// Package site orchestrates a full build: load posts, render pages, write
// the output tree, copy static assets.
package site

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	blogerrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/linkcheck"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/render"
)

// Generator handles site generation for one configuration and output
// directory.
type Generator struct {
	config    *config.Config
	outputDir string
	loader    *post.Loader
	renderer  *render.Renderer
}

// NewGenerator creates a new site generator. It fails only if the page
// templates cannot be parsed.
func NewGenerator(cfg *config.Config, outputDir string) (*Generator, error) {
	renderer, err := render.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		config:    cfg,
		outputDir: filepath.Clean(outputDir),
		loader:    post.NewLoader(),
		renderer:  renderer,
	}, nil
}

// OutputDir exposes the resolved output directory.
func (g *Generator) OutputDir() string { return g.outputDir }

// Build runs the whole pipeline: load, sort, reset the output tree, render
// the home page and one page per post, copy static assets, verify links.
//
// Fail-fast with no partial-success mode. The output directory is destroyed
// before anything is written, so an aborted run can leave a partial tree;
// there is no atomic replacement.
func (g *Generator) Build() error {
	g.renderer.ReloadStyles()

	posts, err := g.loader.Load(g.config.Content.PostsDir)
	if err != nil {
		return err
	}
	post.Sort(posts, g.config.Output.Sort)
	slog.Info("Posts loaded", "count", len(posts), "dir", g.config.Content.PostsDir)

	if err := g.resetOutputDir(); err != nil {
		return err
	}

	if err := g.writeHomePage(posts); err != nil {
		return err
	}

	for _, p := range posts {
		if err := g.writePostPage(p); err != nil {
			return err
		}
	}
	slog.Info("Pages written", "posts", len(posts), "output", g.outputDir)

	if err := g.copyStaticAssets(); err != nil {
		return err
	}

	if err := linkcheck.VerifyTree(g.outputDir); err != nil {
		return blogerrors.LinkCheckFailed(err)
	}

	return nil
}

// resetOutputDir destroys and recreates the output tree, including the
// nested posts directory.
func (g *Generator) resetOutputDir() error {
	if err := os.RemoveAll(g.outputDir); err != nil {
		return blogerrors.Filesystem("remove", g.outputDir, err)
	}
	postsDir := filepath.Join(g.outputDir, "posts")
	if err := os.MkdirAll(postsDir, 0750); err != nil {
		return blogerrors.Filesystem("mkdir", postsDir, err)
	}
	return nil
}

func (g *Generator) writeHomePage(posts []post.Post) error {
	page, err := g.renderer.HomePage(posts)
	if err != nil {
		return err
	}
	path := filepath.Join(g.outputDir, "index.html")
	// #nosec G306 -- generated pages are public assets
	if err := os.WriteFile(path, page, 0644); err != nil {
		return blogerrors.Filesystem("write", path, err)
	}
	return nil
}

func (g *Generator) writePostPage(p post.Post) error {
	dir := filepath.Join(g.outputDir, "posts", p.Slug)
	// os.Mkdir, not MkdirAll: an existing directory means two posts share a
	// slug, and overwriting silently would lose one of them.
	if err := os.Mkdir(dir, 0750); err != nil {
		if os.IsExist(err) {
			return blogerrors.DuplicateSlug(p.Slug, p.SourcePath)
		}
		return blogerrors.Filesystem("mkdir", dir, err)
	}

	page, err := g.renderer.PostPage(p)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "index.html")
	// #nosec G306 -- generated pages are public assets
	if err := os.WriteFile(path, page, 0644); err != nil {
		return blogerrors.Filesystem("write", path, err)
	}
	return nil
}

// copyStaticAssets copies the static directory verbatim into the output
// tree. A missing static directory is not an error.
func (g *Generator) copyStaticAssets() error {
	staticDir := g.config.Content.StaticDir
	if staticDir == "" {
		return nil
	}
	if fi, err := os.Stat(staticDir); err != nil || !fi.IsDir() {
		slog.Debug("No static directory, skipping copy", "dir", staticDir)
		return nil
	}

	dst := filepath.Join(g.outputDir, "static")
	if err := copyDir(staticDir, dst); err != nil {
		return blogerrors.Filesystem("copy static", staticDir, err)
	}
	slog.Info("Static assets copied", "from", staticDir, "to", dst)
	return nil
}
