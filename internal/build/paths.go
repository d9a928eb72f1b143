package build

import (
	"path"
	"sort"
	"strings"

	"git.home.luguber.info/inful/bloggen/internal/content"
)

// indexSlug is the slug carried by the derived chronological index page.
const indexSlug = "index"

// Page is one rendered output page awaiting the write stage.
type Page struct {
	Doc  *content.Document
	Path string // destination path relative to the output root
	HTML string
}

// outputPath derives the destination of a document within the output tree.
//
// Authored documents render to <slug>/index.html, or <slug>.html when flat
// output is configured. The derived index renders to index.html and derived
// tag pages to tags/<tag>/index.html regardless of the flat setting.
func outputPath(doc *content.Document, flat bool) string {
	if doc.Kind == content.SourceDerived {
		if doc.Slug == indexSlug {
			return "index.html"
		}
		return path.Join(doc.Slug, "index.html")
	}
	if flat {
		return doc.Slug + ".html"
	}
	return path.Join(doc.Slug, "index.html")
}

// pageLink converts an output path to the site-absolute href used in
// listings and feeds: directory-style pages link to their directory.
func pageLink(outPath string) string {
	if outPath == "index.html" {
		return "/"
	}
	if trimmed, ok := strings.CutSuffix(outPath, "/index.html"); ok {
		return "/" + trimmed + "/"
	}
	return "/" + outPath
}

// checkCollisions verifies that every page maps to a distinct destination
// path. It runs over the complete page set before anything is written, so a
// failed build never leaves the previous output half-overwritten.
//
// Authored and derived pages are treated uniformly: any two pages on the
// same path are fatal.
func checkCollisions(pages []Page) error {
	claimed := make(map[string]string, len(pages))
	for _, p := range pages {
		origin := p.Doc.Source
		if origin == "" {
			origin = string(p.Doc.Kind) + ":" + p.Doc.Slug
		}
		if prev, ok := claimed[p.Path]; ok {
			return &OutputCollisionError{Path: p.Path, Sources: [2]string{prev, origin}}
		}
		claimed[p.Path] = origin
	}
	return nil
}

// sortPages orders pages by destination path so the write stage is
// deterministic for any permutation of discovery order.
func sortPages(pages []Page) {
	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
}
