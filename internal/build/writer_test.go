package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/bloggen/internal/content"
)

func TestWritePages(t *testing.T) {
	root := filepath.Join(t.TempDir(), "public")
	pages := []Page{
		{Doc: &content.Document{Slug: "a"}, Path: "a/index.html", HTML: "<p>a</p>"},
		{Doc: &content.Document{Slug: "index"}, Path: "index.html", HTML: "<p>home</p>"},
	}
	require.NoError(t, writePages(root, pages))

	data, err := os.ReadFile(filepath.Join(root, "a", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>", string(data))

	data, err = os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>home</p>", string(data))
}

func TestClean(t *testing.T) {
	root := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "index.html"), []byte("x"), 0o600))

	require.NoError(t, Clean(root))
	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))

	// Missing directory is fine.
	require.NoError(t, Clean(root))
}

func TestClean_RefusesDangerousRoots(t *testing.T) {
	assert.Error(t, Clean(""))
	assert.Error(t, Clean("."))
	assert.Error(t, Clean("/"))
}

func TestCopyAssets(t *testing.T) {
	assets := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "css"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "css", "site.css"), []byte("body{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(assets, ".hidden"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(assets, ".git"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(assets, ".git", "config"), []byte("x"), 0o600))

	copied, err := copyAssets(assets, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"css/site.css"}, copied)

	_, err = os.Stat(filepath.Join(out, ".hidden"))
	assert.True(t, os.IsNotExist(err))
}

func TestCopyAssets_MissingDirIsNotAnError(t *testing.T) {
	copied, err := copyAssets(filepath.Join(t.TempDir(), "absent"), t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, copied)
}
