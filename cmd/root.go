package cmd

import (
	"time"

	"github.com/nodewee/screenshot-namer/pkg/agent"
	"github.com/nodewee/screenshot-namer/pkg/config"
	"github.com/nodewee/screenshot-namer/pkg/core"
	"github.com/nodewee/screenshot-namer/pkg/fsops"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/naming"
	"github.com/nodewee/screenshot-namer/pkg/ocr"
	"github.com/nodewee/screenshot-namer/pkg/ocr/engines"
	"github.com/nodewee/screenshot-namer/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	agentModel  string
	scratchDir  string
	rulesFile   string
	ocrToolPath string
	agentPath   string
	dryRun      bool
	verbose     bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config       *config.Config
	logger       *logger.Logger
	rules        *naming.Rules
	orchestrator *core.BatchOrchestrator
}

// NewAppHandler creates an application handler
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// Run processes the batch of input files
func (h *AppHandler) Run(cmd *cobra.Command, args []string) error {
	if err := h.initialize(); err != nil {
		return err
	}

	ctx := cmd.Context()
	result := h.orchestrator.Run(ctx, args)

	h.logger.Debug("Batch result: total=%d succeeded=%d failed=%d",
		result.Total, result.Succeeded, result.Failed)

	// Lenient exit policy: per-file failures are reported in the batch
	// output but do not propagate as a top-level exit code
	return nil
}

// initialize loads configuration and wires the processing pipeline
func (h *AppHandler) initialize() error {
	h.config = config.LoadConfigWithEnvOverrides()
	h.applyCommandLineOverrides()

	if err := h.config.Validate(); err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "configuration validation failed")
	}

	h.logger = logger.NewLogger(h.config.LogLevel, h.config.EnableVerbose)

	rules, err := naming.LoadRules(h.config.RulesFile)
	if err != nil {
		return err
	}
	h.rules = rules

	recognizer := engines.NewCommandRecognizer(h.config.OCRToolPath, h.logger)
	broker := ocr.NewBroker(h.config.ScratchDir, recognizer, h.logger)
	proposer := agent.NewCommandAgent(h.config.AgentPath, h.config.AgentModel, h.logger)
	fileOps := fsops.NewOSFileOps()
	sanitizer := naming.NewSanitizer(h.logger, h.config.DryRun)
	executor := core.NewRenameExecutor(proposer, fileOps, broker, h.rules, h.logger, h.config.DryRun)

	if !proposer.IsAvailable() {
		h.logger.Warn("Analysis agent not found at %q; every file will fail until it is installed or configured", h.config.AgentPath)
	}
	if !recognizer.IsAvailable() {
		h.logger.Info("OCR tool not found at %q; artifacts will carry a placeholder", h.config.OCRToolPath)
	}

	h.orchestrator = core.NewBatchOrchestrator(sanitizer, broker, executor, h.rules, h.logger).
		WithFileTimeout(time.Duration(h.config.TimeoutMinutes) * time.Minute)

	h.logger.Info("Pipeline initialized: %s", h.config.String())
	return nil
}

// applyCommandLineOverrides applies command line parameter overrides
func (h *AppHandler) applyCommandLineOverrides() {
	if agentModel != "" {
		h.config.AgentModel = agentModel
	}
	if scratchDir != "" {
		h.config.ScratchDir = scratchDir
	}
	if rulesFile != "" {
		h.config.RulesFile = rulesFile
	}
	if ocrToolPath != "" {
		h.config.OCRToolPath = ocrToolPath
	}
	if agentPath != "" {
		h.config.AgentPath = agentPath
	}
	if dryRun {
		h.config.DryRun = true
	}
	if verbose {
		h.config.EnableVerbose = true
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screenshot-namer <file>...",
	Short: "Rename screenshots into descriptive, searchable filenames",
	Long: `Rename screenshot image files into descriptive, searchable filenames by
combining local OCR text extraction with an external AI vision agent.

Per file, the pipeline:
1. Sanitizes irregular macOS screenshot names into screenshot_<date>.<time>.<ext>
2. Extracts on-screen text with the configured OCR tool (optional; cached
   in a scratch artifact, reused on reruns)
3. Asks the AI agent to propose a descriptive name from image and text
4. Applies the naming policy and renames, appending _1, _2, ... on collision

Non-screenshot files in the argument list are skipped silently. Failures
are per file; the batch always runs to completion.

Examples:
  screenshot-namer "Screenshot 2025-12-29 at 10.03.10 PM.png"
  screenshot-namer ~/Desktop/Screenshot*.png
  screenshot-namer --dry-run ~/Desktop/Screenshot*.png   # propose only
  screenshot-namer --model claude-opus-4-20250514 shot.png
  screenshot-namer --rules ./naming.yaml shot.png`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewAppHandler().Run(cmd, args)
	},
	SilenceUsage: true,
}

// NewRootCmd returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.Flags().StringVar(&agentModel, "model", "",
		"Model selector passed to the analysis agent")
	rootCmd.Flags().StringVar(&scratchDir, "scratch-dir", "",
		"Scratch directory for OCR artifacts (default: user cache dir)")
	rootCmd.Flags().StringVar(&rulesFile, "rules", "",
		"Naming rules YAML file (default: built-in policy)")
	rootCmd.Flags().StringVar(&ocrToolPath, "ocr-tool", "",
		"Path to the external OCR tool")
	rootCmd.Flags().StringVar(&agentPath, "agent", "",
		"Path to the external analysis agent CLI")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false,
		"Propose names without renaming anything")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
}
