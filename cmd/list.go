package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mad4j/rustedbytes/internal/config"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List collection projects",
	Long: `List the projects of the collection without writing the page.

Runs repository discovery and the release/crates.io lookups, then prints
the collected records.

Examples:
  rustedbytes list           # Table with release and crate versions
  rustedbytes list --json    # Output JSON for piping`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	collector := newCollector(cfg)
	projects, err := collector.Collect(cmd.Context(), cfg.GitHub.User, cfg.GitHub.Prefix)
	if err != nil {
		return err
	}

	// Output JSON if requested
	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	// Output table
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRELEASE\tCRATES.IO\tDESCRIPTION")
	for _, p := range projects {
		release := "-"
		if p.Release != nil {
			release = fmt.Sprintf("%s (%s)", p.Release.Tag, p.Release.PublishedAt.Format("2006-01-02"))
		}
		crate := "-"
		if p.Crate != nil {
			crate = p.Crate.Version
		}
		// Truncate description if too long
		desc := p.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, release, crate, desc)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// Print count
	fmt.Printf("\nTotal: %d project(s)\n", len(projects))
	return nil
}
