package frontmatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: value\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: value\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: value\n# Title\n")

	_, _, had, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_ClosingDelimiterAtEOF_SplitsWithEmptyBody(t *testing.T) {
	input := []byte("---\ntitle: value\n---")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: value\n"), fm)
	require.Empty(t, body)
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: value\r\n---\r\n# Title\r\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: value\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock_SplitsAsHadWithEmptyFrontmatter(t *testing.T) {
	input := []byte("---\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestParseMeta_AllFields_Decodes(t *testing.T) {
	meta, err := ParseMeta([]byte("title: Hello\ndescription: A post\ndate: \"2020-01-05\"\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", meta.Title)
	require.Equal(t, "A post", meta.Description)
	require.Equal(t, time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), meta.Date)
}

func TestParseMeta_BareTimestamp_Decodes(t *testing.T) {
	meta, err := ParseMeta([]byte("title: Hello\ndate: 2020-01-05\n"))
	require.NoError(t, err)
	require.Equal(t, 2020, meta.Date.Year())
	require.Equal(t, time.January, meta.Date.Month())
	require.Equal(t, 5, meta.Date.Day())
}

func TestParseMeta_DateTime_Decodes(t *testing.T) {
	meta, err := ParseMeta([]byte("title: Hello\ndate: \"2020-01-05T13:30:00\"\n"))
	require.NoError(t, err)
	require.Equal(t, 13, meta.Date.Hour())
	require.Equal(t, 30, meta.Date.Minute())
}

func TestParseMeta_DescriptionOptional(t *testing.T) {
	meta, err := ParseMeta([]byte("title: Hello\ndate: \"2020-01-05\"\n"))
	require.NoError(t, err)
	require.Empty(t, meta.Description)
}

func TestParseMeta_MissingTitle_ReturnsMissingFieldError(t *testing.T) {
	_, err := ParseMeta([]byte("date: \"2020-01-05\"\n"))
	require.Error(t, err)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "title", missing.Field)
}

func TestParseMeta_MissingDate_ReturnsMissingFieldError(t *testing.T) {
	_, err := ParseMeta([]byte("title: Hello\n"))
	require.Error(t, err)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "date", missing.Field)
}

func TestParseMeta_InvalidDate_ReturnsInvalidDateError(t *testing.T) {
	_, err := ParseMeta([]byte("title: Hello\ndate: \"soonish\"\n"))
	require.Error(t, err)

	var invalid *InvalidDateError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "soonish", invalid.Value)
}

func TestParseMeta_UnknownKeysIgnored(t *testing.T) {
	meta, err := ParseMeta([]byte("title: Hello\ndate: \"2020-01-05\"\nuid: abc-123\ntags: [go]\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", meta.Title)
}
