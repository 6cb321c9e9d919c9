package naming

import (
	"regexp"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/utils"
)

var (
	invalidRunPattern    = regexp.MustCompile(`[^a-z0-9_]+`)
	underscoreRunPattern = regexp.MustCompile(`_+`)
)

// NormalizeCandidate turns the agent's raw proposal into a filename that
// conforms to the naming policy: lowercase letters, digits, and
// underscores only, at most MaxWords underscore-delimited words, at most
// MaxNameLength characters including the extension, original extension
// preserved. The agent output is untrusted; whatever it prints is reduced
// to policy form here rather than taken on faith.
func NormalizeCandidate(raw, ext string, rules *Rules) (string, error) {
	candidate := strings.TrimSpace(raw)
	candidate = strings.Trim(candidate, `"'`)

	// The agent may answer with a path or keep the extension; use only
	// the stem.
	if idx := strings.LastIndexAny(candidate, "/\\"); idx >= 0 {
		candidate = candidate[idx+1:]
	}
	if idx := strings.LastIndex(candidate, "."); idx > 0 {
		candidate = candidate[:idx]
	}

	candidate = strings.ToLower(candidate)
	candidate = invalidRunPattern.ReplaceAllString(candidate, "_")
	candidate = underscoreRunPattern.ReplaceAllString(candidate, "_")
	candidate = strings.Trim(candidate, "_")

	if candidate == "" {
		return "", utils.NewValidationError("agent proposal reduced to an empty name", nil)
	}

	words := strings.Split(candidate, "_")
	if len(words) > rules.MaxWords {
		words = words[:rules.MaxWords]
	}
	candidate = strings.Join(words, "_")

	suffix := ""
	if ext != "" {
		suffix = "." + strings.ToLower(ext)
	}

	if max := rules.MaxNameLength - len(suffix); len(candidate) > max {
		candidate = strings.Trim(candidate[:max], "_")
	}

	if candidate == "" {
		return "", utils.NewValidationError("agent proposal reduced to an empty name", nil)
	}

	return candidate + suffix, nil
}
