package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abcnoodle/marketintel/internal/dashboard"
	"github.com/abcnoodle/marketintel/internal/loadlog"
	"github.com/abcnoodle/marketintel/internal/progress"
	"github.com/abcnoodle/marketintel/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the dashboard as a static site",
	Long:  `Writes the dashboard page, every filter fragment, the assets and a workbook to a directory that any static file host can serve.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override the configured output directory")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 8080, "port for the local server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	var files int
	err := withHistory(func(store *loadlog.Store) error {
		snap, _, err := loadSnapshot(cmd.Context(), loadlog.ReasonBuild, store)
		if err != nil {
			return err
		}
		renderer, err := dashboard.NewRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		gen := site.NewGenerator(outputDir, cfg.Title, renderer)
		gen.Reporter = progress.NewReporter("Exporting site")
		files, err = gen.Generate(snap)
		if err != nil {
			return fmt.Errorf("generating site: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, files)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")
		addr := fmt.Sprintf(":%d", port)
		fmt.Printf("Serving at http://localhost%s, press Ctrl+C to stop\n", addr)

		ctx, stop := signalContext(cmd)
		defer stop()
		if err := site.Serve(ctx, outputDir, addr, open, logger); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
