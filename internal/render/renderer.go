// Package render produces complete HTML documents for the two page kinds.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	blogerrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

//go:embed assets/styles.css
var defaultStyles string

// Renderer renders the home page and post pages for one site configuration.
type Renderer struct {
	site       config.SiteConfig
	stylesheet string
	styles     template.CSS
	tmpl       *template.Template
}

// pageData carries the fields shared by every page.
type pageData struct {
	Site        config.SiteConfig
	PageTitle   string // empty on the home page
	Description string
	Styles      template.CSS
}

type homeData struct {
	pageData
	Posts []post.Post
}

type postData struct {
	pageData
	Post post.Post
}

var funcs = template.FuncMap{
	"longDate": func(t time.Time) string { return t.Format("January 02, 2006") },
	"isoDate":  func(t time.Time) string { return t.Format("2006-01-02") },
	"smart":    EnhanceText,
}

// New creates a Renderer for the given configuration.
//
// The stylesheet is inlined into every page: the configured file when it
// exists, otherwise the embedded default.
func New(cfg *config.Config) (*Renderer, error) {
	tmpl := template.New("pages").Funcs(funcs)
	for _, text := range []string{headTemplate, headerTemplate} {
		if _, err := tmpl.Parse(text); err != nil {
			return nil, blogerrors.Internal("parsing shared layout templates", err)
		}
	}
	if _, err := tmpl.New("home").Parse(homeTemplate); err != nil {
		return nil, blogerrors.Internal("parsing home page template", err)
	}
	if _, err := tmpl.New("post").Parse(postTemplate); err != nil {
		return nil, blogerrors.Internal("parsing post page template", err)
	}

	r := &Renderer{
		site:       cfg.Site,
		stylesheet: cfg.Content.Stylesheet,
		tmpl:       tmpl,
	}
	r.ReloadStyles()
	return r, nil
}

// ReloadStyles re-reads the configured stylesheet from disk, falling back to
// the embedded default. A Renderer can outlive a stylesheet edit (watch mode
// reuses one across rebuilds), so every build starts with a reload.
func (r *Renderer) ReloadStyles() {
	styles := defaultStyles
	if r.stylesheet != "" {
		if data, err := os.ReadFile(r.stylesheet); err == nil {
			styles = string(data)
		}
	}
	r.styles = template.CSS(styles)
}

// HomePage renders the post listing as a complete HTML document.
// Posts are emitted in the order given.
func (r *Renderer) HomePage(posts []post.Post) ([]byte, error) {
	data := homeData{
		pageData: pageData{
			Site:        r.site,
			Description: r.site.Description,
			Styles:      r.styles,
		},
		Posts: posts,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "home", data); err != nil {
		return nil, blogerrors.RenderFailed("home", err)
	}
	return buf.Bytes(), nil
}

// PostPage renders one post as a complete HTML document.
//
// The page description falls back to the site description when the post has
// none, matching the meta tag on the home page.
func (r *Renderer) PostPage(p post.Post) ([]byte, error) {
	description := p.Description
	if description == "" {
		description = r.site.Description
	}

	data := postData{
		pageData: pageData{
			Site:        r.site,
			PageTitle:   p.Title,
			Description: description,
			Styles:      r.styles,
		},
		Post: p,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "post", data); err != nil {
		return nil, blogerrors.RenderFailed(p.Slug, err)
	}
	return buf.Bytes(), nil
}
