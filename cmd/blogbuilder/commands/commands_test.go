package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

func writeConfig(t *testing.T, root string) string {
	t.Helper()
	path := filepath.Join(root, "blog.yaml")
	content := fmt.Sprintf(`site:
  title: the blog
  author: Jane Doe
  email: jane@example.com
content:
  posts_dir: %s
  static_dir: %s
output:
  directory: %s
`,
		filepath.Join(root, "posts"),
		filepath.Join(root, "static"),
		filepath.Join(root, "build"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunBuild_EndToEnd(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeConfig(t, root)

	postsDir := filepath.Join(root, "posts")
	require.NoError(t, os.Mkdir(postsDir, 0750))
	src := "---\ntitle: \"Hello, World!\"\ndate: \"2020-01-05\"\n---\n# Hi\n\nText.\n"
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, "hello.md"), []byte(src), 0644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.NoError(t, RunBuild(cfg, ResolveOutputDir("", cfg)))

	home, err := os.ReadFile(filepath.Join(root, "build", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(home), "/posts/hello-world")

	page, err := os.ReadFile(filepath.Join(root, "build", "posts", "hello-world", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "Hello, World! | the blog")
}

func TestResolveOutputDir_FlagWinsOverConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Directory = "from-config"

	require.Equal(t, "from-flag", ResolveOutputDir("from-flag", cfg))
	require.Equal(t, "from-config", ResolveOutputDir("", cfg))
}

func TestNewCmd_ScaffoldsLoadablePost(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeConfig(t, root)

	cmd := &NewCmd{Title: "My First Post", Description: "hello"}
	cli := &CLI{Config: cfgPath}
	require.NoError(t, cmd.Run(&Global{}, cli))

	path := filepath.Join(root, "posts", "my-first-post.md")
	_, err := os.Stat(path)
	require.NoError(t, err)

	posts, err := post.NewLoader().Load(filepath.Join(root, "posts"))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "My First Post", posts[0].Title)
	require.Equal(t, "hello", posts[0].Description)
	require.Equal(t, "my-first-post", posts[0].Slug)
}

func TestNewCmd_RefusesExistingFile(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeConfig(t, root)

	cmd := &NewCmd{Title: "My First Post"}
	cli := &CLI{Config: cfgPath}
	require.NoError(t, cmd.Run(&Global{}, cli))
	require.Error(t, cmd.Run(&Global{}, cli))
}

func TestInitCmd_WritesConfig(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "blog.yaml")

	cmd := &InitCmd{}
	cli := &CLI{Config: cfgPath}
	require.NoError(t, cmd.Run(&Global{}, cli))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "the blog", cfg.Site.Title)
}
