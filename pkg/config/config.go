package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nodewee/screenshot-namer/pkg/constants"
)

// Default values for runtime settings
const (
	DefaultLogLevel       = "info"
	DefaultTimeoutMinutes = constants.DefaultTimeoutMinutes
	DefaultEnableVerbose  = false
	DefaultDryRun         = false
)

// Config holds application configuration
type Config struct {
	// External tool paths (persisted to the config file)
	OCRToolPath string `json:"ocr_tool_path"`
	AgentPath   string `json:"agent_path"`

	// Runtime settings (not persisted to file)
	AgentModel     string `json:"-"`
	ScratchDir     string `json:"-"`
	RulesFile      string `json:"-"`
	DryRun         bool   `json:"-"`
	TimeoutMinutes int    `json:"-"`
	LogLevel       string `json:"-"`
	EnableVerbose  bool   `json:"-"`
}

// DefaultConfig returns the configuration by loading from file or
// creating defaults if the file cannot be read
func DefaultConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to load config file, using basic defaults: %v\n", err)
		return &Config{
			OCRToolPath:    constants.DefaultOCRToolPath,
			AgentPath:      constants.DefaultAgentPath,
			AgentModel:     constants.DefaultAgentModel,
			ScratchDir:     constants.GetDefaultScratchDir(),
			TimeoutMinutes: DefaultTimeoutMinutes,
			LogLevel:       DefaultLogLevel,
			EnableVerbose:  DefaultEnableVerbose,
			DryRun:         DefaultDryRun,
		}
	}
	return config
}

// LoadConfigWithEnvOverrides loads config from file and applies
// environment variable overrides
func LoadConfigWithEnvOverrides() *Config {
	config := DefaultConfig()

	// Tool path overrides
	if value := os.Getenv("OCR_TOOL_PATH"); value != "" {
		config.OCRToolPath = value
	}
	if value := os.Getenv("AGENT_PATH"); value != "" {
		config.AgentPath = value
	}

	// Runtime setting overrides
	if value := os.Getenv("SCREENSHOT_NAMER_MODEL"); value != "" {
		config.AgentModel = value
	}
	if value := os.Getenv("SCREENSHOT_NAMER_SCRATCH_DIR"); value != "" {
		config.ScratchDir = value
	}
	if value := os.Getenv("SCREENSHOT_NAMER_RULES"); value != "" {
		config.RulesFile = value
	}
	if value := os.Getenv("SCREENSHOT_NAMER_TIMEOUT_MINUTES"); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			config.TimeoutMinutes = intVal
		}
	}
	if value := os.Getenv("SCREENSHOT_NAMER_LOG_LEVEL"); value != "" {
		config.LogLevel = value
	}
	if value := os.Getenv("SCREENSHOT_NAMER_VERBOSE"); value != "" {
		config.EnableVerbose = value == "true" || value == "1" || value == "yes"
	}
	if value := os.Getenv("SCREENSHOT_NAMER_DRY_RUN"); value != "" {
		config.DryRun = value == "true" || value == "1" || value == "yes"
	}

	return config
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validator := NewConfigValidator()
	return validator.Validate(c)
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Model: %s, ScratchDir: %s, LogLevel: %s, Verbose: %v, DryRun: %v}",
		c.AgentModel, c.ScratchDir, c.LogLevel, c.EnableVerbose, c.DryRun)
}
