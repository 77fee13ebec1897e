// Command dashboard serves the Korean coastal sea-level dashboard data
// API, or exports the derived series to a CSV file.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Korean coastal sea-level dashboard data service",
		Long: `Serves the derived sea-level series, coastal damage sites, and
survey tables behind the sea-level dashboard, or exports the series
as a CSV file.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
