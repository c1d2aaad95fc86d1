package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mad4j/rustedbytes/internal/config"
	"github.com/mad4j/rustedbytes/internal/crates"
	"github.com/mad4j/rustedbytes/internal/github"
	"github.com/mad4j/rustedbytes/internal/page"
)

var generateDryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the project page",
	Long: `Generate the project listing page.

Discovers repositories from the GitHub API, looks up the latest release
and the crates.io version for each, and renders the page into the
configured output directory (docs/ by default).

Set GITHUB_TOKEN to authenticate GitHub API calls; unauthenticated runs
are subject to the public rate limit.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "render to stdout without writing the output file")
}

// newCollector wires the API clients from the configuration.
func newCollector(cfg *config.Config) page.Collector {
	return page.Collector{
		GitHub: github.NewClient(github.DefaultBaseURL, cfg.GitHub.Token),
		Crates: crates.NewClient(crates.DefaultBaseURL),
	}
}

// renderPage loads the intro content and renders the configured layout.
func renderPage(cfg *config.Config, projects []page.Project) (string, error) {
	intro, err := page.LoadIntro(cfg.Content.Intro)
	if err != nil {
		return "", err
	}
	return page.Render(cfg, intro, projects, time.Now().UTC())
}

// generatePage runs the full pipeline and writes the output document.
// Prints progress to stdout like the page generation workflow expects.
func generatePage(ctx context.Context, cfg *config.Config, dryRun bool) error {
	if cfg.GitHub.Token == "" {
		fmt.Fprintln(os.Stderr, "Warning: No GITHUB_TOKEN found. API rate limits may apply.")
	}

	fmt.Printf("Fetching repositories for user '%s' with prefix '%s'...\n",
		cfg.GitHub.User, cfg.GitHub.Prefix)

	collector := newCollector(cfg)
	projects, err := collector.Collect(ctx, cfg.GitHub.User, cfg.GitHub.Prefix)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d repositories\n", len(projects))

	doc, err := renderPage(cfg, projects)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Print(doc)
		return nil
	}

	outPath, err := page.WritePage(cfg.Output.Dir, cfg.Layout, doc)
	if err != nil {
		return err
	}

	fmt.Printf("Page generated successfully: %s\n", outPath)
	fmt.Printf("Total projects: %d\n", len(projects))
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	return generatePage(cmd.Context(), cfg, generateDryRun)
}
