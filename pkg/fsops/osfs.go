package fsops

import (
	"fmt"
	"os"

	"github.com/nodewee/screenshot-namer/pkg/interfaces"
)

// OSFileOps implements the FileOps capability boundary against the real
// filesystem. Rename refuses to overwrite: the existence check happens
// immediately before the rename, so under the sequential processing model
// a rename never clobbers an existing target.
type OSFileOps struct{}

// Ensure OSFileOps implements FileOps interface
var _ interfaces.FileOps = (*OSFileOps)(nil)

// NewOSFileOps creates a filesystem-backed FileOps
func NewOSFileOps() *OSFileOps {
	return &OSFileOps{}
}

// Exists reports whether a file or directory exists at path
func (o *OSFileOps) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// List returns the entry names of a directory
func (o *OSFileOps) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Rename moves oldPath to newPath, failing if newPath already exists
func (o *OSFileOps) Rename(oldPath, newPath string) error {
	exists, err := o.Exists(newPath)
	if err != nil {
		return fmt.Errorf("failed to check rename target %s: %w", newPath, err)
	}
	if exists {
		return fmt.Errorf("rename target already exists: %s", newPath)
	}
	return os.Rename(oldPath, newPath)
}
