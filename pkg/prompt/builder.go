package prompt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/naming"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// BuildRenamePrompt composes the instruction for the external analysis
// agent. Pure function of its inputs: no filesystem access, no state.
// The agent is asked to propose a candidate filename only; the rename
// itself and collision handling happen locally after validation.
func BuildRenamePrompt(imagePath, ocrText string, rules *naming.Rules) string {
	ext := utils.Extension(imagePath)
	dir := filepath.Dir(imagePath)

	var b strings.Builder

	b.WriteString("You are naming a screenshot so it becomes easy to find later.\n\n")
	fmt.Fprintf(&b, "Screenshot file: %s\n\n", imagePath)

	b.WriteString("Text recognized on the screenshot (OCR output, may be partial or empty):\n")
	b.WriteString("---\n")
	b.WriteString(strings.TrimSpace(ocrText))
	b.WriteString("\n---\n\n")

	b.WriteString("Look at the image and the OCR text, then propose ONE descriptive filename.\n\n")
	b.WriteString("Naming rules, all mandatory:\n")
	fmt.Fprintf(&b, "- at most %d characters in total, including the extension\n", rules.MaxNameLength)
	fmt.Fprintf(&b, "- at most %d words, joined by underscores\n", rules.MaxWords)
	b.WriteString("- lowercase letters, digits and underscores only\n")
	b.WriteString("- shaped as topic_subtopic_detail, most significant part first\n")
	fmt.Fprintf(&b, "- keep the original extension: .%s\n", ext)
	fmt.Fprintf(&b, "- the file stays in %s; if your name is already taken there, a numeric suffix (_1, _2, ...) will be appended for you, so prefer a name that is specific enough to be unique\n\n", dir)

	b.WriteString("Respond with the filename only, on a single line, no explanation.\n")

	return b.String()
}
