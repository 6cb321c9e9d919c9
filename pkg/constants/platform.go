package constants

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform-specific tool configurations
type PlatformConfig struct {
	OCRToolPaths []string
	AgentPaths   []string
}

// GetPlatformConfig returns platform-specific configuration
func GetPlatformConfig() *PlatformConfig {
	switch runtime.GOOS {
	case "darwin":
		return &PlatformConfig{
			OCRToolPaths: []string{
				"ocrit",
				"/usr/local/bin/ocrit",
				"/opt/homebrew/bin/ocrit",
			},
			AgentPaths: []string{
				"claude",
				"/usr/local/bin/claude",
				"/opt/homebrew/bin/claude",
			},
		}
	case "windows":
		return &PlatformConfig{
			OCRToolPaths: []string{"ocrit.exe"},
			AgentPaths:   []string{"claude.exe"},
		}
	default: // Linux and other Unix-like systems
		return &PlatformConfig{
			OCRToolPaths: []string{
				"ocrit",
				"/usr/bin/ocrit",
				"/usr/local/bin/ocrit",
			},
			AgentPaths: []string{
				"claude",
				"/usr/bin/claude",
				"/usr/local/bin/claude",
			},
		}
	}
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// IsMacOS returns true if running on macOS
func IsMacOS() bool {
	return runtime.GOOS == "darwin"
}

// GetExecutableName returns the platform-appropriate executable name
func GetExecutableName(baseName string) string {
	if IsWindows() {
		return baseName + ".exe"
	}
	return baseName
}

// GetDefaultScratchDir returns the default scratch location for OCR
// artifacts. It lives outside any watched screenshot folder so that
// artifact creation never retriggers a folder-watch mechanism.
func GetDefaultScratchDir() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, AppName)
	}
	return filepath.Join(os.TempDir(), AppName)
}
