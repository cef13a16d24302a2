// Package post defines the blog post model and the source directory loader.
package post

import (
	"html/template"
	"sort"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

// Post represents one blog entry.
//
// A Post is immutable after construction: every field is populated once from
// the source file at load time. HTML is the converted body, pre-sanitized by
// the markdown converter and safe to inject as trusted markup.
type Post struct {
	Title       string
	Description string
	Date        time.Time
	HTML        template.HTML
	Slug        string
	SourcePath  string
}

// URL returns the site-relative address of the post's page.
func (p Post) URL() string {
	return "/posts/" + p.Slug
}

// Sort orders posts by date, stable with respect to load order for equal
// dates. The default direction is newest-first.
func Sort(posts []Post, order config.SortOrder) {
	if config.NormalizeSortOrder(order) == config.SortOldestFirst {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Date.Before(posts[j].Date)
		})
		return
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}
