package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

// NewCmd implements the 'new' command: it scaffolds a post file with
// frontmatter so authoring starts from a valid document.
type NewCmd struct {
	Title       string `arg:"" help:"Title of the new post"`
	Description string `short:"d" help:"Optional post description"`
}

// scaffoldMeta is the frontmatter written into a scaffolded post. The uid is
// stamped once at authoring time and ignored by the loader; it gives
// external tooling a stable handle on the post even if the title changes.
type scaffoldMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Date        string `yaml:"date"`
	UID         string `yaml:"uid"`
}

func (n *NewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	s, err := slug.Normalize(n.Title)
	if err != nil || s == "" {
		return fmt.Errorf("title %q does not produce a usable slug", n.Title)
	}

	if err := os.MkdirAll(cfg.Content.PostsDir, 0750); err != nil {
		return fmt.Errorf("create posts directory: %w", err)
	}

	path := filepath.Join(cfg.Content.PostsDir, s+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("post file already exists: %s", path)
	}

	meta := scaffoldMeta{
		Title:       n.Title,
		Description: n.Description,
		Date:        time.Now().Format("2006-01-02"),
		UID:         uuid.NewString(),
	}
	fm, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("marshal frontmatter: %w", err)
	}

	content := fmt.Sprintf("---\n%s---\n\nWrite here.\n", fm)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write post file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
