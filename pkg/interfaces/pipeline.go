package interfaces

import "context"

// Sanitizer normalizes irregular screenshot filenames on disk
type Sanitizer interface {
	// Sanitize returns the (possibly new) path for the image. A no-op
	// returns the input path unchanged.
	Sanitize(imagePath string) (string, error)
}

// ArtifactBroker resolves OCR text artifacts for images
type ArtifactBroker interface {
	// EnsureArtifact returns the path to the text artifact for the image,
	// creating it if absent. Never fails on recognizer absence.
	EnsureArtifact(ctx context.Context, imagePath string) (string, error)

	// RemoveArtifact deletes the artifact for the image, if present
	RemoveArtifact(imagePath string) error
}

// Renamer executes the descriptive rename for one image
type Renamer interface {
	// Rename proposes a descriptive name via the external agent and
	// performs a collision-safe rename. Returns the new path.
	Rename(ctx context.Context, imagePath, artifactPath string) (string, error)
}
