package content

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"
)

// Accepted date formats for front matter `date` values supplied as strings.
// YAML decodes unquoted ISO-8601 timestamps to time.Time directly; these
// cover quoted strings and date-only values.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// filenameDatePrefix is the length of a YYYY-MM-DD prefix.
const filenameDatePrefix = 10

// Build validates front matter fields and combines them with the rendered
// body into a Document.
//
// Required fields are checked in a fixed priority order (title, date,
// layout) and the first failure is reported as an InvalidDocumentError.
// A missing date falls back to a YYYY-MM-DD prefix on the source filename
// before being treated as an error.
func Build(fields map[string]any, bodyHTML []byte, source string) (*Document, error) {
	title, err := requiredString(fields, "title", source)
	if err != nil {
		return nil, err
	}

	date, err := resolveDate(fields, source)
	if err != nil {
		return nil, err
	}

	layout, err := requiredString(fields, "layout", source)
	if err != nil {
		return nil, err
	}

	tags, err := optionalStrings(fields, "tags", source)
	if err != nil {
		return nil, err
	}

	slug := slugFromSource(source)
	if explicit, ok := fields["slug"].(string); ok && strings.TrimSpace(explicit) != "" {
		slug = Slugify(explicit)
	}

	return &Document{
		Title:    title,
		Date:     date,
		Layout:   layout,
		Tags:     tags,
		Slug:     slug,
		BodyHTML: template.HTML(bodyHTML),
		Kind:     SourceAuthored,
		Source:   source,
	}, nil
}

func requiredString(fields map[string]any, field, source string) (string, error) {
	v, ok := fields[field]
	if !ok {
		return "", &InvalidDocumentError{Source: source, Field: field, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &InvalidDocumentError{Source: source, Field: field, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	if strings.TrimSpace(s) == "" {
		return "", &InvalidDocumentError{Source: source, Field: field, Reason: "empty"}
	}
	return s, nil
}

func resolveDate(fields map[string]any, source string) (time.Time, error) {
	if v, ok := fields["date"]; ok {
		switch d := v.(type) {
		case time.Time:
			return d, nil
		case string:
			for _, layout := range dateFormats {
				if t, err := time.Parse(layout, d); err == nil {
					return t, nil
				}
			}
			return time.Time{}, &InvalidDocumentError{
				Source: source,
				Field:  "date",
				Reason: fmt.Sprintf("unparseable timestamp %q", d),
			}
		default:
			return time.Time{}, &InvalidDocumentError{
				Source: source,
				Field:  "date",
				Reason: fmt.Sprintf("expected timestamp, got %T", v),
			}
		}
	}

	if t, ok := dateFromFilename(source); ok {
		return t, nil
	}
	return time.Time{}, &InvalidDocumentError{Source: source, Field: "date", Reason: "missing"}
}

// dateFromFilename extracts a date from a YYYY-MM-DD filename prefix,
// yielding midnight UTC.
func dateFromFilename(source string) (time.Time, bool) {
	base := filepath.Base(source)
	if len(base) < filenameDatePrefix {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", base[:filenameDatePrefix])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func optionalStrings(fields map[string]any, field, source string) ([]string, error) {
	v, ok := fields[field]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &InvalidDocumentError{Source: source, Field: field, Reason: fmt.Sprintf("expected sequence of strings, got %T", v)}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &InvalidDocumentError{Source: source, Field: field, Reason: fmt.Sprintf("expected string entry, got %T", item)}
		}
		out = append(out, s)
	}
	return out, nil
}

func slugFromSource(source string) string {
	base := filepath.Base(source)
	return Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
}
