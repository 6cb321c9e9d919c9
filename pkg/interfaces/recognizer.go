package interfaces

import "context"

// Recognizer defines the interface to an external text-recognition tool.
// Recognition is an external capability: implementations shell out to an
// OCR binary and capture its standard output.
type Recognizer interface {
	// Name returns the name of the recognition tool
	Name() string

	// IsAvailable checks if the recognition tool is installed
	IsAvailable() bool

	// Recognize extracts text from the image, one line per recognized
	// text region, newline-joined
	Recognize(ctx context.Context, imagePath string) (string, error)
}
