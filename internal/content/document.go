// Package content defines the Document model and builds validated Documents
// from parsed front matter and rendered Markdown.
package content

import (
	"html/template"
	"time"
)

// SourceKind distinguishes authored documents from synthesized ones.
type SourceKind string

const (
	// SourceAuthored documents come from content files on disk.
	SourceAuthored SourceKind = "authored"

	// SourceDerived documents (tag pages, the chronological index) are
	// synthesized from the authored collection.
	SourceDerived SourceKind = "derived"
)

// Document is the central entity of a build: one page to be rendered.
type Document struct {
	Title    string
	Date     time.Time
	Layout   string
	Tags     []string
	Slug     string
	BodyHTML template.HTML
	Kind     SourceKind

	// Source identifies the file the document came from, for error
	// reporting. Empty for derived documents.
	Source string

	// URL is the absolute address of the page (base URL + output path).
	URL string
}
