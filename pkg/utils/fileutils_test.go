package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.png")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	require.NoError(t, EnsureDir(nested))
	assert.DirExists(t, nested)

	// Re-running is a no-op
	assert.NoError(t, EnsureDir(nested))
	assert.Error(t, EnsureDir(""))
}

func TestBaseWithoutExt(t *testing.T) {
	cases := map[string]string{
		"/shots/Screenshot 1.png":        "Screenshot 1",
		"screenshot_20251229.220310.png": "screenshot_20251229.220310",
		"/a/b/noext":                     "noext",
	}
	for in, want := range cases {
		assert.Equal(t, want, BaseWithoutExt(in), "in=%q", in)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "png", Extension("/a/Shot.PNG"))
	assert.Equal(t, "jpg", Extension("photo.jpg"))
	assert.Equal(t, "", Extension("noext"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "a_b", SanitizeFileName("a/b"))
	assert.NotEmpty(t, SanitizeFileName("ok name.png"))
}
