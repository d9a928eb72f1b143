// Package site aggregates authored documents into the immutable Site view
// used by layout rendering, and synthesizes the derived listing documents
// (per-tag pages and the chronological index).
package site

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/bloggen/internal/content"
)

// Site is the aggregate over all authored documents of a build. It is
// derived once per build and treated as read-only afterwards; concurrent
// layout renders share it without locking.
type Site struct {
	// Documents holds all authored documents ordered by date descending,
	// ties broken by slug ascending.
	Documents []*content.Document

	// Tags maps each normalized tag to the ordered documents carrying it.
	Tags map[string][]*content.Document

	// TagNames lists the normalized tags in ascending order.
	TagNames []string
}

// NormalizeTag trims surrounding whitespace and lowercases a tag so that
// spelling variants group together.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Aggregate builds the Site view from the authored document collection.
//
// The input slice is not modified; ordering in the result is a deterministic
// total order (date descending, slug ascending) regardless of discovery
// order. A document carrying the same tag more than once, in any casing, is
// listed once per group.
func Aggregate(docs []*content.Document) *Site {
	ordered := make([]*content.Document, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.After(ordered[j].Date)
		}
		return ordered[i].Slug < ordered[j].Slug
	})

	tags := make(map[string][]*content.Document)
	for _, doc := range ordered {
		seen := make(map[string]struct{}, len(doc.Tags))
		for _, raw := range doc.Tags {
			tag := NormalizeTag(raw)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags[tag] = append(tags[tag], doc)
		}
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Site{Documents: ordered, Tags: tags, TagNames: names}
}
