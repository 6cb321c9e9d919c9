package constants

import "time"

// Application constants
const (
	AppName = "screenshot-namer"
	// Note: AppVersion is managed via build-time ldflags injection in main.go
)

// Screenshot naming constants
const (
	// DefaultScreenshotPrefix is the prefix macOS gives default screenshot files
	DefaultScreenshotPrefix = "Screenshot"

	// CanonicalPrefix is the prefix of sanitized screenshot filenames
	CanonicalPrefix = "screenshot_"

	// CanonicalTimeLayout renders the sanitized name timestamp,
	// e.g. screenshot_20251229.220310.png
	CanonicalTimeLayout = "20060102.150405"

	// IrregularSeparators are the whitespace characters macOS embeds in
	// default screenshot names between the time and the AM/PM marker.
	// U+202F narrow no-break space (Ventura and later), U+00A0 no-break
	// space (older releases).
	IrregularSeparators = "  "
)

// Naming policy defaults
const (
	DefaultMaxNameLength = 64
	DefaultMaxNameWords  = 10

	// MaxCollisionAttempts bounds the _1, _2, ... suffix probing
	MaxCollisionAttempts = 1000
)

// Artifact constants
const (
	// ArtifactSuffix is appended to the image base name to form the
	// OCR artifact filename in the scratch directory
	ArtifactSuffix = ".ocr.txt"

	// RecognitionPlaceholder is written to the artifact when no OCR tool
	// is available, so downstream consumers can proceed without failing
	RecognitionPlaceholder = "(no OCR text available: recognizer not installed)"
)

// File processing constants
const (
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	DefaultTimeoutMinutes  = 10
	DefaultTimeoutDuration = 10 * time.Minute
)

// Default external tool names (resolved via PATH unless configured)
const (
	DefaultOCRToolPath = "ocrit"
	DefaultAgentPath   = "claude"
	DefaultAgentModel  = "claude-sonnet-4-20250514"
)

// ImageExtensions lists the extensions eligible for renaming by default
var ImageExtensions = []string{"png", "jpg", "jpeg"}
