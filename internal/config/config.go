package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Page layouts selectable via the layout config key.
const (
	// LayoutDefault renders a Markdown page with front matter, intro
	// prose and a footer.
	LayoutDefault = "default"

	// LayoutMinimal renders a Markdown page with front matter and the
	// project table only.
	LayoutMinimal = "minimal"

	// LayoutHTML renders a self-contained HTML page with inline styling.
	LayoutHTML = "html"
)

// Built-in defaults matching the original static page.
const (
	DefaultUser            = "mad4j"
	DefaultPrefix          = "rustedbytes"
	DefaultOutputDir       = "docs"
	DefaultIntroPath       = "content/intro.md"
	DefaultPageTitle       = "Rustedbytes Projects"
	DefaultPageDescription = "A collection of Rust-based projects"
	DefaultHeaderEmoji     = "🦀"
)

// Styling holds the cosmetic strings substituted into the page templates.
// Empty fields fall back to the intro front matter and then to the built-in
// defaults.
type Styling struct {
	PageTitle       string `mapstructure:"page_title"`
	PageDescription string `mapstructure:"page_description"`
	HeaderEmoji     string `mapstructure:"header_emoji"`
}

// GitHub holds the repository discovery settings.
type GitHub struct {
	User   string `mapstructure:"user"`
	Prefix string `mapstructure:"prefix"`
	Token  string `mapstructure:"token"`
}

// Output holds the page destination settings.
type Output struct {
	Dir string `mapstructure:"dir"`
}

// Content holds the paths of editable page content.
type Content struct {
	Intro string `mapstructure:"intro"`
}

// Config is the full generator configuration.
type Config struct {
	Layout  string  `mapstructure:"layout"`
	Theme   string  `mapstructure:"theme"`
	Styling Styling `mapstructure:"styling"`
	GitHub  GitHub  `mapstructure:"github"`
	Output  Output  `mapstructure:"output"`
	Content Content `mapstructure:"content"`

	// Source is the path of the config file that was read, or empty when
	// running on defaults alone.
	Source string `mapstructure:"-"`
}

// ValidLayout reports whether layout names a known page layout.
func ValidLayout(layout string) bool {
	switch layout {
	case LayoutDefault, LayoutMinimal, LayoutHTML:
		return true
	}
	return false
}

// Load reads the generator configuration. When path is non-empty the file
// must exist; otherwise page.yml is searched in the working directory and
// missing config falls back to defaults. Environment variables override
// file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("layout", LayoutDefault)
	v.SetDefault("github.user", DefaultUser)
	v.SetDefault("github.prefix", DefaultPrefix)
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("content.intro", DefaultIntroPath)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
		}
	} else {
		v.SetConfigName("page")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides layers environment variables on top of file values.
// These take the highest precedence.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("GITHUB_TOKEN"); val != "" {
		cfg.GitHub.Token = val
	}
	if val := os.Getenv("RUSTEDBYTES_LAYOUT"); val != "" {
		cfg.Layout = val
	}
	if val := os.Getenv("RUSTEDBYTES_THEME"); val != "" {
		cfg.Theme = val
	}
	if val := os.Getenv("RUSTEDBYTES_PAGE_TITLE"); val != "" {
		cfg.Styling.PageTitle = val
	}
}

// Validate checks the configuration for values the generator cannot work
// with.
func (c *Config) Validate() error {
	if !ValidLayout(c.Layout) {
		return fmt.Errorf("unknown layout %q (valid layouts: %s, %s, %s)",
			c.Layout, LayoutDefault, LayoutMinimal, LayoutHTML)
	}
	if strings.TrimSpace(c.GitHub.User) == "" {
		return fmt.Errorf("github.user must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	return nil
}

// String returns a sanitized representation (hides the API token).
func (c Config) String() string {
	token := "unset"
	if c.GitHub.Token != "" {
		token = "***REDACTED***"
	}
	return fmt.Sprintf("Config{Layout: %s, User: %s, Prefix: %s, OutputDir: %s, Token: %s}",
		c.Layout, c.GitHub.User, c.GitHub.Prefix, c.Output.Dir, token)
}
