package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nodewee/screenshot-namer/pkg/constants"
	"github.com/nodewee/screenshot-namer/pkg/utils"
)

const (
	ConfigFileName = "config.json"
	AppDirName     = ".screenshot-namer"
)

// ConfigFile represents the JSON configuration file structure.
// Only external tool paths are persisted; runtime settings come from
// environment variables and command line flags.
type ConfigFile struct {
	OCRToolPath string `json:"ocr_tool_path"`
	AgentPath   string `json:"agent_path"`
}

// GetConfigDir returns the user configuration directory (~/.screenshot-namer)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to get user home directory")
	}
	return filepath.Join(homeDir, AppDirName), nil
}

// GetConfigFilePath returns the full path to the configuration file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads configuration from file or creates default if not exists
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfigFile(configPath)
	}

	return loadConfigFromFile(configPath)
}

// createDefaultConfigFile creates a default configuration file with
// auto-detected tool paths
func createDefaultConfigFile(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, constants.DefaultDirPermission); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	configFile := &ConfigFile{}
	detectAndUpdateToolPaths(configFile)

	if err := saveConfigFile(configPath, configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to save default config file")
	}

	fmt.Printf("✅ Created default configuration file: %s\n", configPath)
	if configFile.OCRToolPath != "" || configFile.AgentPath != "" {
		fmt.Printf("🔍 Auto-detected available tools\n")
	}

	return configFileToConfig(configFile), nil
}

// loadConfigFromFile loads configuration from an existing file
func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to read config file")
	}

	var configFile ConfigFile
	if err := json.Unmarshal(data, &configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, "failed to parse config file")
	}

	return configFileToConfig(&configFile), nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	configFile := &ConfigFile{
		OCRToolPath: config.OCRToolPath,
		AgentPath:   config.AgentPath,
	}
	return saveConfigFile(configPath, configFile)
}

// saveConfigFile saves ConfigFile to disk
func saveConfigFile(configPath string, configFile *ConfigFile) error {
	data, err := json.MarshalIndent(configFile, "", "  ")
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeSystem, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, constants.DefaultFilePermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to write config file")
	}

	return nil
}

// detectAndUpdateToolPaths auto-detects tool paths and updates the config
func detectAndUpdateToolPaths(configFile *ConfigFile) {
	platformConfig := constants.GetPlatformConfig()

	if path := detectTool(platformConfig.OCRToolPaths); path != "" {
		configFile.OCRToolPath = path
	}
	if path := detectTool(platformConfig.AgentPaths); path != "" {
		configFile.AgentPath = path
	}
}

// detectTool returns the first candidate that resolves to an executable,
// either as an absolute path or via PATH lookup
func detectTool(candidates []string) string {
	for _, pathOrName := range candidates {
		if filepath.IsAbs(pathOrName) {
			if info, err := os.Stat(pathOrName); err == nil && info.Mode()&0111 != 0 {
				return utils.NormalizePath(pathOrName)
			}
			continue
		}
		if detected, err := exec.LookPath(pathOrName); err == nil {
			return utils.NormalizePath(detected)
		}
	}
	return ""
}

// configFileToConfig converts ConfigFile to Config with runtime defaults
func configFileToConfig(cf *ConfigFile) *Config {
	ocrPath := cf.OCRToolPath
	if ocrPath == "" {
		ocrPath = constants.DefaultOCRToolPath
	}
	agentPath := cf.AgentPath
	if agentPath == "" {
		agentPath = constants.DefaultAgentPath
	}

	return &Config{
		OCRToolPath:    ocrPath,
		AgentPath:      agentPath,
		AgentModel:     constants.DefaultAgentModel,
		ScratchDir:     constants.GetDefaultScratchDir(),
		TimeoutMinutes: DefaultTimeoutMinutes,
		LogLevel:       DefaultLogLevel,
		EnableVerbose:  DefaultEnableVerbose,
		DryRun:         DefaultDryRun,
	}
}

// GetConfigValue gets a specific configuration value by key
func GetConfigValue(key string) (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	switch key {
	case "ocr_tool_path":
		return config.OCRToolPath, nil
	case "agent_path":
		return config.AgentPath, nil
	default:
		return "", utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}
}

// SetConfigValue sets a specific configuration value by key
func SetConfigValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "ocr_tool_path":
		config.OCRToolPath = value
	case "agent_path":
		config.AgentPath = value
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}

	return SaveConfig(config)
}

// ListConfigKeys returns all available configuration keys
func ListConfigKeys() []string {
	return []string{
		"ocr_tool_path",
		"agent_path",
	}
}
