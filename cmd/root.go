package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trading-dashboard",
	Short: "Performance analytics for a trading terminal account",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
