// Package frontmatter splits `---` delimited YAML frontmatter from a post
// body and decodes the metadata keys the generator understands.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// MissingFieldError reports a required metadata key that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "required frontmatter field missing: " + e.Field
}

// InvalidDateError reports a date value that could not be parsed as an
// ISO-8601 date or date-time.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date value %q (want ISO-8601, e.g. 2006-01-02)", e.Value)
}

// Meta is the decoded post metadata.
type Meta struct {
	Title       string
	Description string
	Date        time.Time
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input. CRLF documents are handled.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		// Empty frontmatter block.
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// Hand-authored files often end on the closing delimiter with no
		// trailing newline; accept that and treat the body as empty.
		if bytes.HasSuffix(content, []byte(nl+"---")) {
			return content[start : len(content)-len("---")], nil, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], true, nil
}

// rawMeta mirrors the recognized frontmatter keys. Unknown keys (uid, tags,
// whatever authoring tools add) are ignored by yaml.v3.
type rawMeta struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        dateValue `yaml:"date"`
}

// dateValue accepts either a bare YAML timestamp (yaml.v3 decodes unquoted
// ISO dates into time.Time) or a quoted ISO-8601 string.
type dateValue struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (d *dateValue) UnmarshalYAML(value *yaml.Node) error {
	var t time.Time
	if err := value.Decode(&t); err == nil {
		d.Time = t
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return &InvalidDateError{Value: value.Value}
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return &InvalidDateError{Value: s}
}

// ParseMeta decodes raw YAML frontmatter (without --- delimiters) into Meta.
//
// Title and date are required; description is optional.
func ParseMeta(frontmatter []byte) (Meta, error) {
	var raw rawMeta
	if err := yaml.Unmarshal(frontmatter, &raw); err != nil {
		var invalid *InvalidDateError
		if errors.As(err, &invalid) {
			return Meta{}, invalid
		}
		return Meta{}, err
	}

	if strings.TrimSpace(raw.Title) == "" {
		return Meta{}, &MissingFieldError{Field: "title"}
	}
	if raw.Date.IsZero() {
		return Meta{}, &MissingFieldError{Field: "date"}
	}

	return Meta{
		Title:       raw.Title,
		Description: raw.Description,
		Date:        raw.Date.Time,
	}, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
