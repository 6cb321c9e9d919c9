package engines

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// CommandRecognizer shells out to an external OCR tool invoked as
// `<tool> <imagePath>`. The tool is expected to print recognized text to
// standard output, one line per text region, in its highest-accuracy mode
// with language auto-correction enabled.
type CommandRecognizer struct {
	toolPath string
	logger   *logger.Logger
}

// Ensure CommandRecognizer implements the Recognizer interface
var _ interfaces.Recognizer = (*CommandRecognizer)(nil)

// NewCommandRecognizer creates a recognizer for the configured OCR tool
func NewCommandRecognizer(toolPath string, log *logger.Logger) *CommandRecognizer {
	return &CommandRecognizer{
		toolPath: toolPath,
		logger:   log,
	}
}

// Name returns the name of the recognition tool
func (r *CommandRecognizer) Name() string {
	return filepath.Base(r.toolPath)
}

// IsAvailable checks if the OCR tool is available on the system
func (r *CommandRecognizer) IsAvailable() bool {
	return r.toolPath != "" && utils.IsCommandAvailable(r.toolPath)
}

// Recognize runs the OCR tool and captures its standard output verbatim
func (r *CommandRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	cmd := exec.CommandContext(ctx, r.toolPath, utils.NormalizePath(imagePath))

	r.logger.Debug("Running OCR command: %s", cmd.String())
	output, err := cmd.Output()
	if err != nil {
		r.logger.Error("OCR command failed: %v", err)
		return "", utils.WrapError(err, utils.ErrorTypeRecognition, "text recognition failed")
	}

	r.logger.Debug("Recognized %d bytes of text from %s", len(output), imagePath)
	return string(output), nil
}
