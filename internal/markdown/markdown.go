// Package markdown renders Markdown bodies (front matter already removed)
// into HTML fragments using Goldmark.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown bodies to HTML fragments.
//
// Rendering is deterministic: the same input always produces byte-identical
// output. Raw HTML embedded in the source is passed through unmodified; the
// generator publishes author-controlled content only, so no sanitization is
// applied.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer constructs a Renderer with GFM extensions and raw HTML
// pass-through enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		),
	}
}

// Render converts a Markdown body to an HTML fragment.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}
