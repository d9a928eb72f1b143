package site

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/bloggen/internal/content"
)

// DeriveOptions configures derived document synthesis.
type DeriveOptions struct {
	// SiteTitle becomes the title of the chronological index page.
	SiteTitle string

	// IndexLayout and TagLayout name the templates the derived pages render
	// with. They resolve through the same registry as authored layouts.
	IndexLayout string
	TagLayout   string

	// LinkFor maps a document to the href used in generated listings. The
	// output path rules live with the writer, so the caller supplies this.
	LinkFor func(*content.Document) string

	// Render converts a generated Markdown listing to HTML. Supplying the
	// build's Markdown renderer keeps derived bodies on the same rendering
	// path as authored ones.
	Render func([]byte) ([]byte, error)
}

// Derived holds the synthesized documents of a build.
type Derived struct {
	Index    *content.Document
	TagPages map[string]*content.Document
}

var titleCaser = cases.Title(language.English)

// Derive synthesizes the chronological index document and one document per
// distinct normalized tag. A pure function of the Site aggregate.
func Derive(s *Site, opts DeriveOptions) (*Derived, error) {
	body, err := renderListing(s.Documents, opts)
	if err != nil {
		return nil, fmt.Errorf("index listing: %w", err)
	}
	index := &content.Document{
		Title:    opts.SiteTitle,
		Layout:   opts.IndexLayout,
		Slug:     "index",
		BodyHTML: template.HTML(body),
		Kind:     content.SourceDerived,
	}

	tagPages := make(map[string]*content.Document, len(s.TagNames))
	for _, tag := range s.TagNames {
		body, err := renderListing(s.Tags[tag], opts)
		if err != nil {
			return nil, fmt.Errorf("tag %q listing: %w", tag, err)
		}
		tagPages[tag] = &content.Document{
			Title:    titleCaser.String(tag),
			Layout:   opts.TagLayout,
			Slug:     "tags/" + tag,
			BodyHTML: template.HTML(body),
			Kind:     content.SourceDerived,
		}
	}

	return &Derived{Index: index, TagPages: tagPages}, nil
}

// renderListing generates a Markdown listing for the given ordered documents
// and renders it to HTML.
func renderListing(docs []*content.Document, opts DeriveOptions) ([]byte, error) {
	var b strings.Builder
	for _, doc := range docs {
		fmt.Fprintf(&b, "- [%s](%s) (%s)\n", doc.Title, opts.LinkFor(doc), doc.Date.Format("2006-01-02"))
	}
	if opts.Render == nil {
		return []byte(b.String()), nil
	}
	return opts.Render([]byte(b.String()))
}
