package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/naming"
	"github.com/nodewee/screenshot-namer/pkg/types"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// BatchOrchestrator validates, filters, and sequences the input files.
// Processing is strictly one file at a time: the agent call is the
// dominant cost and artifacts are scratch-scoped per file, so overlap
// buys nothing and risks colliding renames on shared target names.
type BatchOrchestrator struct {
	sanitizer   interfaces.Sanitizer
	broker      interfaces.ArtifactBroker
	renamer     interfaces.Renamer
	rules       *naming.Rules
	logger      *logger.Logger
	fileTimeout time.Duration
}

// NewBatchOrchestrator creates a batch orchestrator
func NewBatchOrchestrator(sanitizer interfaces.Sanitizer, broker interfaces.ArtifactBroker,
	renamer interfaces.Renamer, rules *naming.Rules, log *logger.Logger) *BatchOrchestrator {
	return &BatchOrchestrator{
		sanitizer: sanitizer,
		broker:    broker,
		renamer:   renamer,
		rules:     rules,
		logger:    log,
	}
}

// WithFileTimeout bounds each per-file pipeline run. Zero means no limit.
func (o *BatchOrchestrator) WithFileTimeout(timeout time.Duration) *BatchOrchestrator {
	o.fileTimeout = timeout
	return o
}

// Run processes every input path and returns the aggregate result.
// Non-screenshot names are silently skipped and stay uncounted; missing
// files count as failures; per-file failures never abort the batch.
// A summary is printed only when more than one file was submitted.
func (o *BatchOrchestrator) Run(ctx context.Context, paths []string) *types.BatchResult {
	result := &types.BatchResult{}

	for _, path := range paths {
		base := filepath.Base(path)

		if !o.rules.MatchesScreenshot(base) {
			o.logger.Info("Skipping non-screenshot file: %s", base)
			result.Record(types.FileOutcome{
				Path:   path,
				Status: types.OutcomeSkipped,
			})
			continue
		}

		o.logger.ProgressAlways("📸", "Processing %s", base)

		newPath, err := o.processOne(ctx, path)
		if err != nil {
			o.logger.Error("Failed to process %s: %v", base, err)
			result.Record(types.FileOutcome{
				Path:   path,
				Status: types.OutcomeFailure,
				Error:  err.Error(),
			})
			continue
		}

		result.Record(types.FileOutcome{
			Path:    path,
			NewPath: newPath,
			Status:  types.OutcomeSuccess,
		})
	}

	if len(paths) > 1 {
		o.printSummary(result)
	}

	return result
}

// processOne runs the per-file pipeline: sanitize, resolve the OCR
// artifact, then execute the descriptive rename
func (o *BatchOrchestrator) processOne(ctx context.Context, path string) (string, error) {
	if o.fileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.fileTimeout)
		defer cancel()
	}

	absPath, err := utils.GetAbsolutePath(path)
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeValidation, "failed to resolve input path")
	}

	if !utils.FileExists(absPath) {
		return "", utils.NewValidationError(
			fmt.Sprintf("input file does not exist: %s", absPath), nil)
	}

	currentPath, err := o.sanitizer.Sanitize(absPath)
	if err != nil {
		return "", err
	}

	artifactPath, err := o.broker.EnsureArtifact(ctx, currentPath)
	if err != nil {
		return "", err
	}

	return o.renamer.Rename(ctx, currentPath, artifactPath)
}

// printSummary emits the aggregate tally for multi-file batches
func (o *BatchOrchestrator) printSummary(result *types.BatchResult) {
	o.logger.ProgressAlways("📊", "Batch complete: %d processed, %d succeeded, %d failed",
		result.Total, result.Succeeded, result.Failed)
}
