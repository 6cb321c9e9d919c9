package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/nodewee/screenshot-namer/pkg/constants"
)

// NormalizePath standardizes file paths
func NormalizePath(path string) string {
	return filepath.Clean(path)
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	return os.MkdirAll(dirPath, constants.DefaultDirPermission)
}

// FileExists reports whether path refers to an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsCommandAvailable checks if a command is available in PATH
func IsCommandAvailable(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// SanitizeFileName cleans filename for cross-platform compatibility
func SanitizeFileName(filename string) string {
	if runtime.GOOS == "windows" {
		re := regexp.MustCompile(`[<>:"/\\|?*]`)
		filename = re.ReplaceAllString(filename, "_")
	} else {
		re := regexp.MustCompile(`[/\x00]`)
		filename = re.ReplaceAllString(filename, "_")
	}
	filename = strings.TrimSpace(filename)
	if len(filename) > 250 {
		filename = filename[:250]
	}
	return filename
}

// BaseWithoutExt returns the file's base name with its extension stripped
func BaseWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Extension returns the lowercase extension without the leading dot
func Extension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return strings.TrimPrefix(ext, ".")
}

// GetAbsolutePath returns the normalized absolute path
func GetAbsolutePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return NormalizePath(absPath), nil
}
