package build

import (
	"os"
	"path/filepath"
)

// writePages writes every rendered page under the output root, creating
// intermediate directories as needed and overwriting existing files.
//
// The collision pre-pass has already run; within this set every destination
// path is unique.
func writePages(outputRoot string, pages []Page) error {
	if err := os.MkdirAll(outputRoot, 0o750); err != nil {
		return &IOError{Path: outputRoot, Cause: err}
	}
	for _, p := range pages {
		dest := filepath.Join(outputRoot, filepath.FromSlash(p.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return &IOError{Path: filepath.Dir(dest), Cause: err}
		}
		// #nosec G306 -- rendered pages are public site content
		if err := os.WriteFile(dest, []byte(p.HTML), 0o644); err != nil {
			return &IOError{Path: dest, Cause: err}
		}
	}
	return nil
}

// Clean removes the output directory. A missing directory is not an error.
func Clean(outputRoot string) error {
	if outputRoot == "" || outputRoot == "." || outputRoot == "/" {
		return &IOError{Path: outputRoot, Cause: os.ErrInvalid}
	}
	if err := os.RemoveAll(outputRoot); err != nil {
		return &IOError{Path: outputRoot, Cause: err}
	}
	return nil
}
