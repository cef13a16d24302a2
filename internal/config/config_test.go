package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	blogerrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
)

func TestDefault_AppliesAllDefaults(t *testing.T) {
	cfg := Default()

	require.Equal(t, "My Blog", cfg.Site.Title)
	require.Equal(t, "en", cfg.Site.Lang)
	require.Equal(t, "posts", cfg.Content.PostsDir)
	require.Equal(t, "static", cfg.Content.StaticDir)
	require.Equal(t, "styles.css", cfg.Content.Stylesheet)
	require.Equal(t, "build", cfg.Output.Directory)
	require.Equal(t, SortNewestFirst, cfg.Output.Sort)
}

func TestLoad_ReadsValuesAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	content := `site:
  title: the blog
  author: Jane Doe
  links:
    - name: github
      url: https://github.com/janedoe
output:
  sort: oldest
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "the blog", cfg.Site.Title)
	require.Equal(t, "Jane Doe", cfg.Site.Author)
	require.Len(t, cfg.Site.Links, 1)
	require.Equal(t, SortOldestFirst, cfg.Output.Sort)
	// Unspecified sections still get defaults.
	require.Equal(t, "posts", cfg.Content.PostsDir)
	require.Equal(t, "build", cfg.Output.Directory)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("BLOG_TITLE_UNDER_TEST", "env blog")

	path := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  title: ${BLOG_TITLE_UNDER_TEST}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "env blog", cfg.Site.Title)
}

func TestLoad_ExplicitMissingPathIsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, blogerrors.IsCategory(err, blogerrors.CategoryConfig))
}

func TestLoad_DefaultPathMissingFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	require.Equal(t, "My Blog", cfg.Site.Title)
}

func TestLoad_MalformedYAMLIsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, blogerrors.IsCategory(err, blogerrors.CategoryConfig))
}

func TestNormalizeSortOrder(t *testing.T) {
	require.Equal(t, SortNewestFirst, NormalizeSortOrder(""))
	require.Equal(t, SortNewestFirst, NormalizeSortOrder("sideways"))
	require.Equal(t, SortOldestFirst, NormalizeSortOrder("oldest"))
	require.Equal(t, SortOldestFirst, NormalizeSortOrder(" Oldest "))
}

func TestInit_WritesLoadableExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "the blog", cfg.Site.Title)
	require.NotEmpty(t, cfg.Site.Links)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, Init(path, false))

	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
