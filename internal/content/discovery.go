package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/bloggen/internal/logfields"
)

// DiscoverSources walks the content root and returns the relative paths of
// all Markdown files, sorted lexicographically so downstream work is
// independent of filesystem iteration order.
//
// Hidden files and directories (dot-prefixed) are skipped.
func DiscoverSources(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("content root %s: %w", root, err)
	}

	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content root %s: %w", root, err)
	}

	sort.Strings(sources)
	slog.Debug("Discovered content sources", logfields.Path(root), logfields.Pages(len(sources)))
	return sources, nil
}
