package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abcnoodle/marketintel/internal/dataset"
	"github.com/abcnoodle/marketintel/internal/loadlog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the datasets",
	Long:  `Loads both datasets, reports every validation issue and exits non-zero when any issue is an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var issues []dataset.Issue
		var snap *dataset.Snapshot
		err := withHistory(func(store *loadlog.Store) error {
			var err error
			snap, issues, err = loadSnapshot(cmd.Context(), loadlog.ReasonCheck, store)
			return err
		})
		if err != nil {
			return err
		}

		ov := snap.Overview()
		fmt.Printf("Insights:  %s\n", snap.Sources.Insights)
		fmt.Printf("Dashboard: %s\n", snap.Sources.Dashboard)
		fmt.Printf("Market:    %s units, %s of %s products are Samyang\n",
			humanize.Comma(int64(ov.TotalSalesUnits)),
			humanize.Comma(int64(ov.SamyangProducts)),
			humanize.Comma(int64(ov.TotalProducts)))
		for _, c := range snap.DataCountries() {
			var ranked int
			for _, v := range dataset.Views {
				items, _ := snap.Pareto(c, v)
				ranked += len(items)
			}
			fmt.Printf("  %-12s %s ranked products, %s flavours, %s weeks\n", c,
				humanize.Comma(int64(ranked)),
				humanize.Comma(int64(len(snap.Flavours(c)))),
				humanize.Comma(int64(len(snap.Weekly(c)))))
		}

		if len(issues) == 0 {
			fmt.Println("\nNo issues found.")
			return nil
		}
		fmt.Printf("\n%s:\n", pluralIssues(len(issues)))
		for _, i := range issues {
			fmt.Printf("  %s\n", i)
		}
		if dataset.HasErrors(issues) {
			exitOnError(fmt.Errorf("datasets failed validation"))
		}
		return nil
	},
}

func pluralIssues(n int) string {
	if n == 1 {
		return "1 issue"
	}
	return humanize.Comma(int64(n)) + " issues"
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
