package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mad4j/rustedbytes/internal/config"
)

// TestLoadIntro_WithFrontMatter tests parsing an intro file with front
// matter overrides.
func TestLoadIntro_WithFrontMatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intro.md")
	content := `---
title: Custom Title
description: Custom description
emoji: "🚀"
---

Some intro prose.

A second paragraph.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write intro file: %v", err)
	}

	intro, err := LoadIntro(path)
	if err != nil {
		t.Fatalf("LoadIntro failed: %v", err)
	}

	if intro.Meta.Title != "Custom Title" {
		t.Errorf("Expected title 'Custom Title', got %q", intro.Meta.Title)
	}
	if intro.Meta.Description != "Custom description" {
		t.Errorf("Expected description 'Custom description', got %q", intro.Meta.Description)
	}
	if intro.Meta.Emoji != "🚀" {
		t.Errorf("Expected emoji '🚀', got %q", intro.Meta.Emoji)
	}
	if !strings.HasPrefix(intro.Body, "Some intro prose.") {
		t.Errorf("Expected body to start with the prose, got %q", intro.Body)
	}
	if strings.Contains(intro.Body, "---") {
		t.Errorf("Expected front matter to be stripped from body, got %q", intro.Body)
	}
}

// TestLoadIntro_PlainMarkdown tests that front matter is optional.
func TestLoadIntro_PlainMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intro.md")
	if err := os.WriteFile(path, []byte("Just prose, no front matter.\n"), 0o644); err != nil {
		t.Fatalf("Failed to write intro file: %v", err)
	}

	intro, err := LoadIntro(path)
	if err != nil {
		t.Fatalf("LoadIntro failed: %v", err)
	}

	if intro.Meta != (IntroMeta{}) {
		t.Errorf("Expected empty meta, got %+v", intro.Meta)
	}
	if intro.Body != "Just prose, no front matter." {
		t.Errorf("Unexpected body: %q", intro.Body)
	}
}

// TestLoadIntro_Missing tests the built-in fallback for a missing file.
func TestLoadIntro_Missing(t *testing.T) {
	intro, err := LoadIntro(filepath.Join(t.TempDir(), "nope.md"))
	if err != nil {
		t.Fatalf("Expected missing intro to fall back to default, got error: %v", err)
	}

	if intro.Body != DefaultIntro().Body {
		t.Errorf("Expected default intro body, got %q", intro.Body)
	}
	if !strings.Contains(intro.Body, "Welcome to the Rustedbytes project collection!") {
		t.Errorf("Expected the original welcome text, got %q", intro.Body)
	}
}

// TestResolveStyling tests the styling precedence: config, then intro front
// matter, then built-in defaults.
func TestResolveStyling(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Styling
		meta      IntroMeta
		wantTitle string
		wantDesc  string
		wantEmoji string
	}{
		{
			name:      "all defaults",
			wantTitle: config.DefaultPageTitle,
			wantDesc:  config.DefaultPageDescription,
			wantEmoji: config.DefaultHeaderEmoji,
		},
		{
			name:      "intro fills unset config",
			meta:      IntroMeta{Title: "Meta Title", Emoji: "🚀"},
			wantTitle: "Meta Title",
			wantDesc:  config.DefaultPageDescription,
			wantEmoji: "🚀",
		},
		{
			name:      "config beats intro",
			cfg:       config.Styling{PageTitle: "Config Title"},
			meta:      IntroMeta{Title: "Meta Title", Description: "Meta description"},
			wantTitle: "Config Title",
			wantDesc:  "Meta description",
			wantEmoji: config.DefaultHeaderEmoji,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStyling(tt.cfg, tt.meta)
			if got.PageTitle != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, got.PageTitle)
			}
			if got.PageDescription != tt.wantDesc {
				t.Errorf("Expected description %q, got %q", tt.wantDesc, got.PageDescription)
			}
			if got.HeaderEmoji != tt.wantEmoji {
				t.Errorf("Expected emoji %q, got %q", tt.wantEmoji, got.HeaderEmoji)
			}
		})
	}
}
