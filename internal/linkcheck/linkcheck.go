// Package linkcheck verifies that local post links in rendered HTML resolve
// to pages in the generated output tree.
package linkcheck

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// PostLinks extracts site-local post links (hrefs under /posts/) from an
// HTML document.
func PostLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); strings.HasPrefix(href, "/posts/") {
				links = append(links, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// VerifyTree parses outputDir/index.html and checks that every post link has
// a generated index.html in the output tree. It reports the first dangling
// link found.
func VerifyTree(outputDir string) error {
	home, err := os.Open(filepath.Join(outputDir, "index.html"))
	if err != nil {
		return fmt.Errorf("open home page: %w", err)
	}
	defer func() { _ = home.Close() }()

	links, err := PostLinks(home)
	if err != nil {
		return err
	}

	for _, link := range links {
		target := filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(link, "/")), "index.html")
		if fi, err := os.Stat(target); err != nil || fi.IsDir() {
			return fmt.Errorf("home page links %s but %s was not generated", link, target)
		}
	}
	return nil
}

func getAttr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
