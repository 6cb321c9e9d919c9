package interfaces

// FileOps is the capability boundary for rename side effects. It exposes
// exactly the three operations the rename step is allowed to perform:
// existence test, directory listing, and rename. Nothing in the rename
// path gets broader filesystem access than this interface grants.
type FileOps interface {
	// Exists reports whether a file or directory exists at path
	Exists(path string) (bool, error)

	// List returns the entry names of a directory
	List(dir string) ([]string, error)

	// Rename moves oldPath to newPath, failing if newPath already exists
	Rename(oldPath, newPath string) error
}
