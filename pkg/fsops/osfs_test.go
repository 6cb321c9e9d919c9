package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	ops := NewOSFileOps()

	exists, err := ops.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ops.Exists(filepath.Join(dir, "missing.png"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	ops := NewOSFileOps()
	names, err := ops.List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, names)

	_, err = ops.List(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.png")
	dst := filepath.Join(dir, "new.png")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	ops := NewOSFileOps()
	require.NoError(t, ops.Rename(src, dst))

	assert.NoFileExists(t, src)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestRenameRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.png")
	dst := filepath.Join(dir, "taken.png")
	require.NoError(t, os.WriteFile(src, []byte("src"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("original"), 0644))

	ops := NewOSFileOps()
	err := ops.Rename(src, dst)
	assert.Error(t, err)

	// Both files survive, target content untouched
	assert.FileExists(t, src)
	content, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(content))
}
