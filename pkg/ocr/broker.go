package ocr

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nodewee/screenshot-namer/pkg/constants"
	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// Broker resolves OCR text artifacts for images. Artifacts live in a
// scratch directory distinct from the image's own directory, so creating
// one never retriggers a folder-watch mechanism observing the screenshot
// folder. Exactly one artifact exists per in-flight image, keyed by the
// image's base name.
type Broker struct {
	scratchDir string
	recognizer interfaces.Recognizer
	logger     *logger.Logger
}

// Ensure Broker implements the ArtifactBroker interface
var _ interfaces.ArtifactBroker = (*Broker)(nil)

// NewBroker creates an artifact broker rooted at scratchDir
func NewBroker(scratchDir string, recognizer interfaces.Recognizer, log *logger.Logger) *Broker {
	return &Broker{
		scratchDir: utils.NormalizePath(scratchDir),
		recognizer: recognizer,
		logger:     log,
	}
}

// ArtifactPath returns the deterministic artifact location for an image:
// <scratchDir>/<imageBaseName>.ocr.txt
func (b *Broker) ArtifactPath(imagePath string) string {
	base := utils.SanitizeFileName(utils.BaseWithoutExt(imagePath))
	return filepath.Join(b.scratchDir, base+constants.ArtifactSuffix)
}

// EnsureArtifact returns the path to the text artifact for the image,
// creating it if absent. Resolution order: reuse an existing artifact,
// else run the recognizer, else write a placeholder line. Recognizer
// absence or failure degrades to the placeholder rather than erroring.
func (b *Broker) EnsureArtifact(ctx context.Context, imagePath string) (string, error) {
	artifactPath := b.ArtifactPath(imagePath)

	if utils.FileExists(artifactPath) {
		b.logger.Progress("⏭️", "Reusing existing OCR artifact: %s", artifactPath)
		return artifactPath, nil
	}

	if err := utils.EnsureDir(b.scratchDir); err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to create scratch directory")
	}

	content := constants.RecognitionPlaceholder + "\n"
	if b.recognizer != nil && b.recognizer.IsAvailable() {
		b.logger.Progress("🔍", "Extracting text with %s", b.recognizer.Name())
		text, err := b.recognizer.Recognize(ctx, imagePath)
		if err != nil {
			b.logger.Warn("Text recognition failed, proceeding without OCR text: %v", err)
		} else {
			content = text
		}
	} else {
		b.logger.Info("No OCR tool available, writing placeholder artifact")
	}

	if err := os.WriteFile(artifactPath, []byte(content), constants.DefaultFilePermission); err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to write OCR artifact")
	}

	b.logger.Debug("Created OCR artifact: %s", artifactPath)
	return artifactPath, nil
}

// RemoveArtifact deletes the artifact for the image, if present. The
// artifact is single-use scratch state: it must be gone before the image
// counts as processed.
func (b *Broker) RemoveArtifact(imagePath string) error {
	artifactPath := b.ArtifactPath(imagePath)
	if err := os.Remove(artifactPath); err != nil && !os.IsNotExist(err) {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to remove OCR artifact")
	}
	b.logger.Debug("Removed OCR artifact: %s", artifactPath)
	return nil
}
