package render

import (
	"strings"
	"unicode"
)

// EnhanceText applies smart typography to plain text: directional quotes,
// en/em dashes, and ellipses.
//
// It is meant for titles and descriptions only. Post bodies get their
// typography from goldmark's Typographer extension during conversion, which
// understands markup; this function does not and must never be fed HTML.
//
// Idempotent: the output contains none of the ASCII sequences it rewrites.
func EnhanceText(s string) string {
	s = dashReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	prev := rune(0)
	for _, r := range s {
		switch r {
		case '"':
			if opensQuote(prev) {
				b.WriteRune('“')
			} else {
				b.WriteRune('”')
			}
		case '\'':
			if opensQuote(prev) {
				b.WriteRune('‘')
			} else {
				b.WriteRune('’')
			}
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// Longest sequences first so "---" is not consumed as "--" + "-".
var dashReplacer = strings.NewReplacer(
	"---", "—",
	"--", "–",
	"...", "…",
)

// opensQuote reports whether a quote following prev starts a quotation.
func opensQuote(prev rune) bool {
	if prev == 0 {
		return true
	}
	if unicode.IsSpace(prev) {
		return true
	}
	switch prev {
	case '(', '[', '{', '—', '–':
		return true
	}
	return false
}
