package config

import (
	"fmt"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/utils"
)

// ConfigValidator validates runtime configuration
type ConfigValidator struct{}

// NewConfigValidator creates a configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate validates the configuration
func (v *ConfigValidator) Validate(c *Config) error {
	var errs []string

	if c.AgentPath == "" {
		errs = append(errs, "agent path must not be empty")
	}
	if c.AgentModel == "" {
		errs = append(errs, "agent model must not be empty")
	}
	if c.ScratchDir == "" {
		errs = append(errs, "scratch directory must not be empty")
	}
	if c.TimeoutMinutes < 1 {
		errs = append(errs, "timeout must be at least 1 minute")
	}
	if err := v.validateLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return utils.NewValidationError("configuration validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errs, "; ")))
	}

	return nil
}

// validateLogLevel validates the log level
func (v *ConfigValidator) validateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	for _, valid := range validLevels {
		if strings.ToLower(level) == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid log level: %s", level)
}
