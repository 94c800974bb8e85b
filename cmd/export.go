package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/export"
	"github.com/abcnoodle/marketintel/internal/loadlog"
)

var exportCmd = &cobra.Command{
	Use:   "export xlsx|png",
	Short: "Export the datasets as a workbook or a chart image",
	Long: `Writes the datasets as an Excel workbook, or draws one chart as a PNG
image. Charts: seasonality (per --country) and pareto (per --country and --view).`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"xlsx", "png"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "output file (defaults to marketintel.xlsx or <chart>-<country>.png)")
	exportCmd.Flags().String("chart", export.ChartSeasonality, "chart to draw for png")
	exportCmd.Flags().String("country", dataset.CountryAll, "country for png charts")
	exportCmd.Flags().String("view", dataset.ViewSamyang, "pareto view for png charts (samyang or others)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	if format != "xlsx" && format != "png" {
		return fmt.Errorf("unknown export format %q: must be xlsx or png", format)
	}

	country, _ := cmd.Flags().GetString("country")
	country, err := dataset.NormalizeCountry(country)
	if err != nil {
		return fmt.Errorf("country %q: %w", country, err)
	}
	view, _ := cmd.Flags().GetString("view")
	view = dataset.NormalizeView(view)
	chartName, _ := cmd.Flags().GetString("chart")

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		if format == "xlsx" {
			out = "marketintel.xlsx"
		} else {
			out = fmt.Sprintf("%s-%s.png", chartName, country)
		}
	}

	return withHistory(func(store *loadlog.Store) error {
		snap, _, err := loadSnapshot(cmd.Context(), loadlog.ReasonExport, store)
		if err != nil {
			return err
		}

		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}

		if format == "xlsx" {
			err = export.WriteWorkbook(f, snap)
		} else {
			err = export.WritePNG(f, chartName, snap, country, view)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
			if errors.Is(err, export.ErrNoData) {
				return fmt.Errorf("no %s data for %s", chartName, country)
			}
			return fmt.Errorf("exporting %s: %w", format, err)
		}

		logger.Info("export written", zap.String("format", format), zap.String("path", out))
		fmt.Printf("Wrote %s\n", out)
		return nil
	})
}
