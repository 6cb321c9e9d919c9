package interfaces

import "context"

// NameProposer defines the interface to the external analysis agent.
// The agent only proposes a candidate filename from image content and OCR
// text; it never performs filesystem side effects itself. The rename and
// collision handling are local, verified operations (see FileOps).
type NameProposer interface {
	// Name returns the name of the agent tool
	Name() string

	// IsAvailable checks if the agent tool is installed
	IsAvailable() bool

	// ProposeName asks the agent for a candidate filename for the image,
	// given the rendered prompt. Returns the raw proposal as printed by
	// the agent, unvalidated.
	ProposeName(ctx context.Context, prompt string) (string, error)
}
