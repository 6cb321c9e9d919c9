package naming

import (
	"fmt"
	"os"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/constants"
	"github.com/nodewee/screenshot-namer/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Rules holds the naming policy applied to proposed filenames and to the
// batch eligibility filter. Loaded from an optional YAML file; fields left
// unset fall back to the defaults.
type Rules struct {
	// MaxNameLength caps the full filename length, extension included
	MaxNameLength int `yaml:"max_name_length"`

	// MaxWords caps the number of underscore-delimited words
	MaxWords int `yaml:"max_words"`

	// ScreenshotPrefix filters batch inputs: only files whose base name
	// starts with this prefix are eligible
	ScreenshotPrefix string `yaml:"screenshot_prefix"`

	// Extensions lists eligible image extensions, without the dot
	Extensions []string `yaml:"extensions"`
}

// DefaultRules returns the built-in naming policy
func DefaultRules() *Rules {
	return &Rules{
		MaxNameLength:    constants.DefaultMaxNameLength,
		MaxWords:         constants.DefaultMaxNameWords,
		ScreenshotPrefix: constants.DefaultScreenshotPrefix,
		Extensions:       append([]string{}, constants.ImageExtensions...),
	}
}

// LoadRules loads naming rules from a YAML file, filling unset fields with
// defaults. An empty path returns the defaults unchanged.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to read naming rules file")
	}

	loaded := &Rules{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, "failed to parse naming rules file")
	}

	if loaded.MaxNameLength > 0 {
		rules.MaxNameLength = loaded.MaxNameLength
	}
	if loaded.MaxWords > 0 {
		rules.MaxWords = loaded.MaxWords
	}
	if loaded.ScreenshotPrefix != "" {
		rules.ScreenshotPrefix = loaded.ScreenshotPrefix
	}
	if len(loaded.Extensions) > 0 {
		rules.Extensions = loaded.Extensions
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate checks the rules for internal consistency
func (r *Rules) Validate() error {
	var errs []string

	if r.MaxNameLength < 8 {
		errs = append(errs, "max_name_length must be at least 8")
	}
	if r.MaxWords < 1 {
		errs = append(errs, "max_words must be at least 1")
	}
	if len(r.Extensions) == 0 {
		errs = append(errs, "extensions must not be empty")
	}
	for _, ext := range r.Extensions {
		if strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("extension %q must not include the dot", ext))
		}
	}

	if len(errs) > 0 {
		return utils.NewValidationError("naming rules validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errs, "; ")))
	}
	return nil
}

// MatchesScreenshot reports whether a base filename is eligible for
// renaming: it must start with the screenshot prefix or be an already
// sanitized canonical name, and carry an eligible image extension.
func (r *Rules) MatchesScreenshot(baseName string) bool {
	if !r.hasEligibleExtension(baseName) {
		return false
	}
	return strings.HasPrefix(baseName, r.ScreenshotPrefix) ||
		strings.HasPrefix(baseName, constants.CanonicalPrefix)
}

func (r *Rules) hasEligibleExtension(baseName string) bool {
	ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(getExt(baseName))), ".")
	for _, allowed := range r.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func getExt(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx:]
}
