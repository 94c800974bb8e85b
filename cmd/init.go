package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abcnoodle/marketintel/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize marketintel configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to locate the datasets and configure the dashboard, then writes a .marketintel.yml file.`,
	// The wizard creates the config, so none is loaded beforehand.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
