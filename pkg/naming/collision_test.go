package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nodewee/screenshot-namer/pkg/fsops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAvailableTargetFreeName(t *testing.T) {
	dir := t.TempDir()
	ops := fsops.NewOSFileOps()

	target, err := NextAvailableTarget(ops, dir, "tide.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tide.png"), target)
}

func TestNextAvailableTargetAppendsSuffix(t *testing.T) {
	dir := t.TempDir()
	ops := fsops.NewOSFileOps()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tide.png"), []byte("x"), 0644))

	target, err := NextAvailableTarget(ops, dir, "tide.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tide_1.png"), target)
}

func TestNextAvailableTargetIncrementsUntilFree(t *testing.T) {
	dir := t.TempDir()
	ops := fsops.NewOSFileOps()

	for _, name := range []string{"tide.png", "tide_1.png", "tide_2.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	target, err := NextAvailableTarget(ops, dir, "tide.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tide_3.png"), target)
}
