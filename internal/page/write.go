package page

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mad4j/rustedbytes/internal/config"
)

// Filename returns the output document name for a layout.
func Filename(layout string) string {
	if layout == config.LayoutHTML {
		return "index.html"
	}
	return "index.md"
}

// WritePage writes the rendered document into dir and returns the final
// path. The directory is created when missing.
func WritePage(dir, layout, doc string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	finalPath := filepath.Join(dir, Filename(layout))

	// Write atomically via temp file in the same directory (for atomic rename)
	tmpFile, err := os.CreateTemp(dir, ".index.*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Ensure cleanup on any error
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.WriteString(doc); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		return "", fmt.Errorf("failed to set temp file permissions: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Success - prevent cleanup from removing the file
	tmpFile = nil
	return finalPath, nil
}
