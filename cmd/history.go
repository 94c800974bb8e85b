package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abcnoodle/marketintel/internal/loadlog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent dataset loads",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")
		prune, _ := cmd.Flags().GetDuration("prune")

		return withHistory(func(store *loadlog.Store) error {
			if store == nil {
				return fmt.Errorf("load history is disabled (history_db is empty)")
			}
			ctx := cmd.Context()

			if prune > 0 {
				n, err := store.DeleteBefore(ctx, time.Now().Add(-prune))
				if err != nil {
					return err
				}
				fmt.Printf("Pruned %s entries older than %s\n", humanize.Comma(n), prune)
			}

			entries, err := store.List(ctx, loadlog.Filter{Status: loadlog.Status(status), Limit: limit})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No loads recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tREASON\tSTATUS\tTOOK\tWARNINGS\tDETAIL")
			for _, e := range entries {
				detail := fmt.Sprintf("%d countries", len(e.Countries))
				if e.Error != "" {
					detail = e.Error
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
					humanize.Time(e.Timestamp), e.Reason, e.Status, e.Duration, e.Warnings, detail)
			}
			return tw.Flush()
		})
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of entries to show")
	historyCmd.Flags().String("status", "", "only show loads with this status (ok or failed)")
	historyCmd.Flags().Duration("prune", 0, "delete entries older than this before listing")
	rootCmd.AddCommand(historyCmd)
}
