package build

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// copyAssets copies every file under the assets directory verbatim into the
// output root, preserving relative paths. Hidden files and directories are
// skipped. A missing assets directory is not an error: sites without assets
// are fine.
//
// Returns the slash-separated relative paths of the copied files.
func copyAssets(assetsDir, outputRoot string) ([]string, error) {
	if _, err := os.Stat(assetsDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &IOError{Path: assetsDir, Cause: err}
	}

	var copied []string
	err := filepath.WalkDir(assetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != assetsDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(assetsDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(outputRoot, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return &IOError{Path: filepath.Dir(dest), Cause: err}
		}
		if err := copyFile(path, dest); err != nil {
			return err
		}
		copied = append(copied, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(copied)
	return copied, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) // #nosec G304 -- paths come from the assets walk
	if err != nil {
		return &IOError{Path: src, Cause: err}
	}
	defer in.Close()

	out, err := os.Create(dest) // #nosec G304 -- dest stays under the output root
	if err != nil {
		return &IOError{Path: dest, Cause: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return &IOError{Path: dest, Cause: err}
	}
	return out.Close()
}
