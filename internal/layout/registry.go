// Package layout owns the template registry and renders documents into
// final HTML pages.
//
// Templates are an opaque rendering capability looked up by name. The
// registry is populated once at startup and read-only afterwards; it is
// passed explicitly instead of living in process-global state.
package layout

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/bloggen/internal/content"
	"git.home.luguber.info/inful/bloggen/internal/site"
)

// UnknownLayoutError reports a document layout with no registered template.
type UnknownLayoutError struct {
	Name string
}

func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("unknown layout %q", e.Name)
}

// RenderError reports a template execution failure for a document.
type RenderError struct {
	Slug  string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Slug, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }

// PageContext is the data every layout template receives.
type PageContext struct {
	Page *content.Document
	Site *site.Site
}

// Registry holds the named layout templates for one build.
type Registry struct {
	tpl *template.Template
}

// Funcs returns the helper functions available to every layout template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// formatDateTime formats a timestamp; default layout is RFC1123.
		"formatDateTime": func(t time.Time, layout ...string) string {
			l := time.RFC1123
			if len(layout) > 0 && layout[0] != "" {
				l = layout[0]
			}
			return t.Format(l)
		},
		// join concatenates a string slice; default separator is ", ".
		"join": func(items []string, sep ...string) string {
			s := ", "
			if len(sep) > 0 {
				s = sep[0]
			}
			return strings.Join(items, s)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203 -- author-controlled content
		},
	}
}

// LoadDir parses every .html file directly under dir into a Registry.
// Template names are the file basenames without the .html extension.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read templates directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".html") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no .html templates found in %s", dir)
	}

	tpl, err := template.New("").Funcs(Funcs()).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Registry{tpl: tpl}, nil
}

// Parse builds a Registry from in-memory template sources keyed by layout
// name. Intended for tests and embedded defaults.
func Parse(sources map[string]string) (*Registry, error) {
	tpl := template.New("").Funcs(Funcs())
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := tpl.New(name).Parse(sources[name]); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}
	return &Registry{tpl: tpl}, nil
}

// lookup resolves a layout name to a template, accepting either the bare
// name or the on-disk file name.
func (r *Registry) lookup(name string) *template.Template {
	if t := r.tpl.Lookup(name); t != nil {
		return t
	}
	return r.tpl.Lookup(name + ".html")
}

// Has reports whether a layout name resolves to a registered template.
func (r *Registry) Has(name string) bool {
	return r.lookup(name) != nil
}

// Render looks up the document's layout and executes it against the
// document and site context.
//
// An unregistered layout yields UnknownLayoutError; a template execution
// failure yields RenderError. Both abort the surrounding build: a half
// rendered site is never published.
func (r *Registry) Render(doc *content.Document, s *site.Site) (string, error) {
	tpl := r.lookup(doc.Layout)
	if tpl == nil {
		return "", &UnknownLayoutError{Name: doc.Layout}
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, PageContext{Page: doc, Site: s}); err != nil {
		return "", &RenderError{Slug: doc.Slug, Cause: err}
	}
	return buf.String(), nil
}
