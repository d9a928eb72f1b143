package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsError(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	_, _, err := Split(input)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingFrontMatter))
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---\n# Title\n")

	fm, body, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: Hello\n# Title\n")

	_, _, err := Split(input)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Hello\r\n---\r\n# Title\r\n")

	fm, body, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, []byte("title: Hello\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock_ReturnsEmptyFields(t *testing.T) {
	input := []byte("---\n---\nbody\n")

	fm, body, err := Split(input)
	require.NoError(t, err)
	require.Empty(t, fm)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF_NoTrailingNewline(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---")

	fm, body, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Empty(t, body)
}

func TestParseYAML_Mapping(t *testing.T) {
	fields, err := ParseYAML([]byte("title: Hello\ntags:\n  - go\n  - blog\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []any{"go", "blog"}, fields["tags"])
}

func TestParseYAML_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := ParseYAML(nil)
	require.NoError(t, err)
	require.NotNil(t, fields)
	require.Empty(t, fields)
}

func TestParseYAML_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := ParseYAML([]byte("title: [unclosed\n"))
	require.Error(t, err)
}

func TestParse_FullDocument(t *testing.T) {
	input := []byte("---\ntitle: Hello\ndate: 2023-02-04T15:38:42Z\n---\nBody text.\n")

	fields, body, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []byte("Body text.\n"), body)
}
