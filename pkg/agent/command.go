package agent

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/interfaces"
	"github.com/nodewee/screenshot-namer/pkg/logger"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// ReadOnlyTools is the allow-list passed to the agent CLI. The agent may
// inspect the directory to pick a distinctive name, but it gets no
// side-effecting tools: the rename itself is performed locally through
// the FileOps boundary after the proposal is validated.
var ReadOnlyTools = []string{"LS", "Glob"}

// CommandAgent invokes the external analysis-agent CLI with a model
// selector, a tool allow-list, and a single prompt, and reads the
// proposed filename from its standard output.
type CommandAgent struct {
	agentPath string
	model     string
	logger    *logger.Logger
}

// Ensure CommandAgent implements the NameProposer interface
var _ interfaces.NameProposer = (*CommandAgent)(nil)

// NewCommandAgent creates an agent invoker for the configured CLI
func NewCommandAgent(agentPath, model string, log *logger.Logger) *CommandAgent {
	return &CommandAgent{
		agentPath: agentPath,
		model:     model,
		logger:    log,
	}
}

// Name returns the name of the agent tool
func (a *CommandAgent) Name() string {
	return filepath.Base(a.agentPath)
}

// IsAvailable checks if the agent CLI is available on the system
func (a *CommandAgent) IsAvailable() bool {
	return a.agentPath != "" && utils.IsCommandAvailable(a.agentPath)
}

// ProposeName runs the agent and returns its raw proposal: the last
// non-empty line of standard output. Process failure or empty output is
// a per-file failure for the caller; there is no retry.
func (a *CommandAgent) ProposeName(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, a.agentPath,
		"-p", prompt,
		"--model", a.model,
		"--allowedTools", strings.Join(ReadOnlyTools, ","))

	a.logger.Debug("Running agent: %s --model %s", a.agentPath, a.model)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			a.logger.Error("Agent stderr: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", utils.NewAgentError("analysis agent invocation failed", err)
	}

	proposal := lastNonEmptyLine(string(output))
	if proposal == "" {
		return "", utils.NewAgentError("analysis agent produced no proposal", nil)
	}

	a.logger.Debug("Agent proposed: %s", proposal)
	return proposal, nil
}

// lastNonEmptyLine returns the final non-blank line of the output. Agent
// CLIs commonly print progress above the answer; the answer comes last.
func lastNonEmptyLine(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
