package post

import (
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	blogerrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/frontmatter"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
)

// Loader reads a posts directory into Post values.
type Loader struct {
	converter *markdown.Converter
}

// NewLoader creates a Loader with the site's markdown converter.
func NewLoader() *Loader {
	return &Loader{converter: markdown.NewConverter()}
}

// Load enumerates dir non-recursively and returns one Post per qualifying
// file, in directory enumeration order (the caller sorts).
//
// Directories, non-regular files, and names starting with '.' are skipped.
// The first malformed file aborts the load; there is no best-effort mode.
func (l *Loader) Load(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, blogerrors.Filesystem("read dir", dir, err)
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		p, err := l.loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (l *Loader) loadFile(path string) (Post, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Post{}, blogerrors.Filesystem("read", path, err)
	}

	fm, body, had, err := frontmatter.Split(content)
	if err != nil {
		return Post{}, blogerrors.FrontmatterInvalid(path, err)
	}
	if !had {
		// Without a metadata block there can be no title.
		return Post{}, blogerrors.MissingField(path, "title")
	}

	meta, err := frontmatter.ParseMeta(fm)
	if err != nil {
		return Post{}, classifyMetaError(path, err)
	}

	html, err := l.converter.Convert(body)
	if err != nil {
		return Post{}, blogerrors.MarkdownFailed(path, err)
	}

	s, err := slug.Normalize(meta.Title)
	if err != nil || s == "" {
		return Post{}, blogerrors.InvalidSlug(path, meta.Title, err)
	}

	return Post{
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		HTML:        template.HTML(html),
		Slug:        s,
		SourcePath:  path,
	}, nil
}

func classifyMetaError(path string, err error) error {
	var missing *frontmatter.MissingFieldError
	if errors.As(err, &missing) {
		return blogerrors.MissingField(path, missing.Field)
	}
	var invalid *frontmatter.InvalidDateError
	if errors.As(err, &invalid) {
		return blogerrors.InvalidDate(path, invalid.Value, err)
	}
	return blogerrors.FrontmatterInvalid(path, err)
}
