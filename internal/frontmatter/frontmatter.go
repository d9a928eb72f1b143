// Package frontmatter splits a content document into its YAML front matter
// and Markdown body.
//
// Front matter is mandatory for bloggen documents: the layout and date of a
// post must be known before any rendering decision can be made, so a file
// without a front matter block is an error rather than a bare page.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontMatter indicates the document does not start with a
	// front matter delimiter at all.
	ErrMissingFrontMatter = errors.New("document has no front matter block")

	// ErrMissingClosingDelimiter indicates the document started with a front
	// matter delimiter but did not contain a closing delimiter.
	ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")
)

// Split separates YAML front matter (`---` delimited) from the Markdown body.
//
// The opening delimiter must be the first line of the document. Both "\n" and
// "\r\n" newline styles are accepted; the detected style also applies to the
// closing delimiter.
func Split(content []byte) (frontmatter []byte, body []byte, err error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, nil, ErrMissingFrontMatter
	}

	start := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[start:], closeLine) {
		// Empty front matter block. Valid as far as splitting goes; the
		// content builder rejects it later for the missing required fields.
		return []byte{}, content[start+len(closeLine):], nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter on the last line without a trailing newline
		// still counts.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content[start:], tail) {
			end := len(content) - len(tail) + len(nl)
			return content[start:end], []byte{}, nil
		}
		return nil, nil, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], nil
}

// ParseYAML parses raw YAML front matter (without --- delimiters) into a map.
//
// YAML that is valid but not a mapping (e.g. a bare scalar or sequence) is
// rejected: front matter keys must be addressable by name.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Parse combines Split and ParseYAML: it returns the decoded front matter
// fields and the remaining Markdown body.
func Parse(content []byte) (map[string]any, []byte, error) {
	raw, body, err := Split(content)
	if err != nil {
		return nil, nil, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return nil, nil, err
	}
	return fields, body, nil
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
