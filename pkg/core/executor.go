package core

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/naming"
	"github.com/nodewee/screenshot-namer/pkg/prompt"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// RenameExecutor turns one image plus its OCR artifact into a descriptive
// filename. The external agent only proposes the name; normalization,
// collision probing, and the rename itself happen here, through the
// FileOps capability boundary. The OCR artifact is deleted after the
// agent call no matter how it went: it is single-use scratch state.
type RenameExecutor struct {
	proposer interfaces.NameProposer
	fileOps  interfaces.FileOps
	broker   interfaces.ArtifactBroker
	rules    *naming.Rules
	logger   *logger.Logger
	dryRun   bool
}

// Ensure RenameExecutor implements the Renamer interface
var _ interfaces.Renamer = (*RenameExecutor)(nil)

// NewRenameExecutor creates a rename executor
func NewRenameExecutor(proposer interfaces.NameProposer, fileOps interfaces.FileOps,
	broker interfaces.ArtifactBroker, rules *naming.Rules, log *logger.Logger, dryRun bool) *RenameExecutor {
	return &RenameExecutor{
		proposer: proposer,
		fileOps:  fileOps,
		broker:   broker,
		rules:    rules,
		logger:   log,
		dryRun:   dryRun,
	}
}

// Rename proposes a descriptive name via the agent and performs a
// collision-safe rename. Returns the new path. Agent failure is a
// per-file failure with no retry.
func (e *RenameExecutor) Rename(ctx context.Context, imagePath, artifactPath string) (newPath string, err error) {
	defer func() {
		if cleanupErr := e.broker.RemoveArtifact(imagePath); cleanupErr != nil {
			e.logger.Warn("OCR artifact cleanup failed: %v", cleanupErr)
		}
	}()

	ocrText, err := os.ReadFile(artifactPath)
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to read OCR artifact")
	}

	renamePrompt := prompt.BuildRenamePrompt(imagePath, string(ocrText), e.rules)

	e.logger.Progress("🤖", "Asking %s for a descriptive name", e.proposer.Name())
	proposal, err := e.proposer.ProposeName(ctx, renamePrompt)
	if err != nil {
		return "", err
	}

	name, err := naming.NormalizeCandidate(proposal, utils.Extension(imagePath), e.rules)
	if err != nil {
		return "", err
	}

	// The agent occasionally proposes the name the file already has
	if name == filepath.Base(imagePath) {
		e.logger.Progress("⏭️", "File already carries the proposed name: %s", name)
		return imagePath, nil
	}

	target, err := naming.NextAvailableTarget(e.fileOps, filepath.Dir(imagePath), name)
	if err != nil {
		return "", err
	}

	if e.dryRun {
		e.logger.ProgressAlways("🔎", "Dry run: would rename %s -> %s",
			filepath.Base(imagePath), filepath.Base(target))
		return target, nil
	}

	// Let the wrapper classify the failure: a taken target is a
	// collision, but the rename can also fail on permissions or I/O
	if err := e.fileOps.Rename(imagePath, target); err != nil {
		return "", utils.WrapError(err, "", "rename failed")
	}

	e.logger.ProgressAlways("✅", "%s -> %s", filepath.Base(imagePath), filepath.Base(target))
	return target, nil
}
