package page

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

// IntroMeta is the front matter an intro content file may carry. Non-empty
// fields back-fill styling values the configuration left unset.
type IntroMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Emoji       string `yaml:"emoji"`
}

// Intro is the prose block rendered above the project table.
type Intro struct {
	Meta IntroMeta
	Body string
}

// defaultIntroBody matches the original static page text.
const defaultIntroBody = `Welcome to the Rustedbytes project collection! This page provides an overview of all projects in the rustedbytes ecosystem, including their latest releases on GitHub and crates.io availability.

Each project is built with Rust, focusing on performance, reliability, and developer experience.`

// DefaultIntro returns the built-in intro used when no content file exists.
func DefaultIntro() *Intro {
	return &Intro{Body: defaultIntroBody}
}

// LoadIntro reads the intro content file at path. A missing file falls back
// to the built-in default; a present but malformed one is an error. Front
// matter is optional.
func LoadIntro(path string) (*Intro, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultIntro(), nil
		}
		return nil, fmt.Errorf("failed to open intro content at %s: %w", path, err)
	}
	defer f.Close()

	var meta IntroMeta
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return nil, fmt.Errorf("failed to parse intro content at %s: %w", path, err)
	}

	return &Intro{
		Meta: meta,
		Body: strings.TrimSpace(string(body)),
	}, nil
}
