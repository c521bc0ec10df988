// Package source reads C-like source text and extracts the assignment
// statements that feed the lowering engine.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMissingSource is returned when the input cannot be obtained.
var ErrMissingSource = errors.New("missing source")

// ReadFile reads a whole source file.
func ReadFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingSource, filename, err)
	}
	return string(content), nil
}

// Read reads all of r. name is only used in error messages.
func Read(r io.Reader, name string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingSource, name, err)
	}
	return string(content), nil
}
