package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mad4j/rustedbytes/internal/config"
)

// TestFilename tests the layout to output-name mapping.
func TestFilename(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{config.LayoutDefault, "index.md"},
		{config.LayoutMinimal, "index.md"},
		{config.LayoutHTML, "index.html"},
	}

	for _, tt := range tests {
		if got := Filename(tt.layout); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.layout, got, tt.want)
		}
	}
}

// TestWritePage tests that the document lands at the final path with no
// leftover temp files, creating the output directory when missing.
func TestWritePage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	path, err := WritePage(dir, config.LayoutDefault, "document body\n")
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}

	if path != filepath.Join(dir, "index.md") {
		t.Errorf("Unexpected output path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "document body\n" {
		t.Errorf("Unexpected file content: %q", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 file in output directory, got %d", len(entries))
	}
}

// TestWritePage_HTMLLayout tests the html output name.
func TestWritePage_HTMLLayout(t *testing.T) {
	dir := t.TempDir()

	path, err := WritePage(dir, config.LayoutHTML, "<!DOCTYPE html>\n")
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if filepath.Base(path) != "index.html" {
		t.Errorf("Expected index.html, got %s", filepath.Base(path))
	}
}

// TestWritePage_Overwrite tests that regeneration replaces the previous
// document.
func TestWritePage_Overwrite(t *testing.T) {
	dir := t.TempDir()

	if _, err := WritePage(dir, config.LayoutDefault, "old\n"); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	path, err := WritePage(dir, config.LayoutDefault, "new\n")
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "new\n" {
		t.Errorf("Expected overwritten content, got %q", string(data))
	}
}
