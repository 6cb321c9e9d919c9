package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nodewee/screenshot-namer/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	home := isolateHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(home, AppDirName, ConfigFileName))
	assert.NotEmpty(t, cfg.OCRToolPath)
	assert.NotEmpty(t, cfg.AgentPath)
	assert.Equal(t, constants.DefaultAgentModel, cfg.AgentModel)
}

func TestLoadConfigReadsExistingFile(t *testing.T) {
	home := isolateHome(t)
	configDir := filepath.Join(home, AppDirName)
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName),
		[]byte(`{"ocr_tool_path":"/opt/bin/myocr","agent_path":"/opt/bin/myagent"}`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/myocr", cfg.OCRToolPath)
	assert.Equal(t, "/opt/bin/myagent", cfg.AgentPath)
}

func TestEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("OCR_TOOL_PATH", "/env/ocr")
	t.Setenv("AGENT_PATH", "/env/agent")
	t.Setenv("SCREENSHOT_NAMER_MODEL", "some-model")
	t.Setenv("SCREENSHOT_NAMER_SCRATCH_DIR", "/env/scratch")
	t.Setenv("SCREENSHOT_NAMER_TIMEOUT_MINUTES", "3")
	t.Setenv("SCREENSHOT_NAMER_VERBOSE", "true")
	t.Setenv("SCREENSHOT_NAMER_DRY_RUN", "1")

	cfg := LoadConfigWithEnvOverrides()
	assert.Equal(t, "/env/ocr", cfg.OCRToolPath)
	assert.Equal(t, "/env/agent", cfg.AgentPath)
	assert.Equal(t, "some-model", cfg.AgentModel)
	assert.Equal(t, "/env/scratch", cfg.ScratchDir)
	assert.Equal(t, 3, cfg.TimeoutMinutes)
	assert.True(t, cfg.EnableVerbose)
	assert.True(t, cfg.DryRun)
}

func TestSetAndGetConfigValue(t *testing.T) {
	isolateHome(t)

	require.NoError(t, SetConfigValue("agent_path", "/custom/agent"))

	value, err := GetConfigValue("agent_path")
	require.NoError(t, err)
	assert.Equal(t, "/custom/agent", value)
}

func TestGetConfigValueUnknownKey(t *testing.T) {
	isolateHome(t)

	_, err := GetConfigValue("bogus_key")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty agent path", func(c *Config) { c.AgentPath = "" }, true},
		{"empty model", func(c *Config) { c.AgentModel = "" }, true},
		{"empty scratch dir", func(c *Config) { c.ScratchDir = "" }, true},
		{"zero timeout", func(c *Config) { c.TimeoutMinutes = 0 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &Config{
				OCRToolPath:    "ocrit",
				AgentPath:      "claude",
				AgentModel:     "m",
				ScratchDir:     "/tmp/scratch",
				TimeoutMinutes: 5,
				LogLevel:       "info",
			}
			c.mutate(cfg)
			err := cfg.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClone(t *testing.T) {
	cfg := &Config{AgentModel: "m", ScratchDir: "/s"}
	clone := cfg.Clone()
	clone.AgentModel = "other"
	assert.Equal(t, "m", cfg.AgentModel)
}
