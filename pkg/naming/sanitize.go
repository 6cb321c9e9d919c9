package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/constants"
	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// Sanitizer normalizes macOS default screenshot names. Names like
// "Screenshot 2025-12-29 at 10.03.10 PM.png" embed a narrow no-break
// space before the AM/PM marker, which breaks naive shell handling and
// is awkward to type. Sanitize replaces such names with the canonical
// screenshot_<YYYYMMDD>.<HHMMSS>.<ext> form derived from the file's
// timestamp.
type Sanitizer struct {
	logger *logger.Logger
	dryRun bool
}

// Ensure Sanitizer implements the Sanitizer interface
var _ interfaces.Sanitizer = (*Sanitizer)(nil)

// NewSanitizer creates a filename sanitizer. In dry-run mode Sanitize
// only reports the canonical name and leaves the file in place.
func NewSanitizer(log *logger.Logger, dryRun bool) *Sanitizer {
	return &Sanitizer{logger: log, dryRun: dryRun}
}

// Sanitize renames the image to its canonical form when the name embeds
// an irregular separator, returning the new path. Regular names are a
// no-op and return the input path unchanged. Re-running on an already
// canonical name is therefore always a no-op.
func (s *Sanitizer) Sanitize(imagePath string) (string, error) {
	base := filepath.Base(imagePath)
	if !strings.ContainsAny(base, constants.IrregularSeparators) {
		return imagePath, nil
	}

	info, err := os.Stat(imagePath)
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeSanitize, "failed to stat file for sanitization")
	}

	canonical := CanonicalName(info.ModTime().Format(constants.CanonicalTimeLayout), utils.Extension(imagePath))
	target := filepath.Join(filepath.Dir(imagePath), canonical)

	if s.dryRun {
		s.logger.ProgressAlways("🔎", "Dry run: would sanitize %s -> %s", base, canonical)
		return imagePath, nil
	}

	if utils.FileExists(target) {
		return "", utils.NewSanitizeError(
			fmt.Sprintf("sanitization target already exists: %s", target), nil)
	}

	s.logger.Progress("🧹", "Sanitizing irregular name: %s -> %s", base, canonical)

	if err := os.Rename(imagePath, target); err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeSanitize, "failed to rename irregular filename")
	}

	return target, nil
}

// CanonicalName builds the canonical sanitized filename from a formatted
// timestamp and an extension (without the dot)
func CanonicalName(timestamp, ext string) string {
	if ext == "" {
		return constants.CanonicalPrefix + timestamp
	}
	return constants.CanonicalPrefix + timestamp + "." + ext
}
