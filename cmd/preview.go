package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mad4j/rustedbytes/internal/config"
	"github.com/mad4j/rustedbytes/internal/page"
	"github.com/mad4j/rustedbytes/internal/preview"
)

var previewAddr string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the generated page locally",
	Long: `Generate the page and serve the output directory over HTTP.

The page is regenerated automatically when the config file or the intro
content change. The html layout renders directly in the browser; Markdown
layouts are served as plain text.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewAddr, "addr", "127.0.0.1:8080", "listen address")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() error {
		// Re-read config so edits to page.yml take effect on rebuild
		current, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		// The server keeps serving the directory it started with
		current.Output.Dir = cfg.Output.Dir
		return generatePage(ctx, current, false)
	}

	if err := rebuild(); err != nil {
		return err
	}

	watch := []string{cfg.Content.Intro}
	if cfg.Source != "" {
		watch = append(watch, cfg.Source)
	} else {
		// No config file yet; watch the default location so creating one
		// starts triggering rebuilds
		watch = append(watch, "page.yml")
	}

	srv := &preview.Server{
		Addr:    previewAddr,
		Dir:     cfg.Output.Dir,
		Watch:   watch,
		Rebuild: rebuild,
	}

	fmt.Printf("Preview: http://%s/%s\n", previewAddr, page.Filename(cfg.Layout))
	fmt.Println("Press Ctrl+C to stop")
	return srv.Run(ctx)
}
