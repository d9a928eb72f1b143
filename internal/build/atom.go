package build

import (
	"encoding/xml"
	"os"
	"time"

	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/site"
)

const atomFeedName = "atom.xml"

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Xmlns   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	Updated string      `xml:"updated"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string   `xml:"title"`
	Published string   `xml:"published"`
	Link      atomLink `xml:"link"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
}

// writeAtomFeed emits an Atom feed over the chronological index. Entries
// follow the index ordering, so the feed is deterministic for the same
// content set.
func writeAtomFeed(cfg *config.Config, s *site.Site, dest string) error {
	feed := atomFeed{
		Xmlns: "http://www.w3.org/2005/Atom",
		Title: cfg.Title,
	}
	if len(s.Documents) > 0 {
		feed.Updated = s.Documents[0].Date.UTC().Format(time.RFC3339)
	}
	for _, doc := range s.Documents {
		feed.Entries = append(feed.Entries, atomEntry{
			Title:     doc.Title,
			Published: doc.Date.UTC().Format(time.RFC3339),
			Link:      atomLink{Href: doc.URL},
		})
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return &IOError{Path: dest, Cause: err}
	}
	data := append([]byte(xml.Header), out...)
	data = append(data, '\n')
	// #nosec G306 -- the feed is public site content
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return &IOError{Path: dest, Cause: err}
	}
	return nil
}
