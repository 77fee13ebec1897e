package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coastwatch/sea-level-service/internal/dataset"
	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/coastwatch/sea-level-service/internal/export"
)

func newExportCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the derived sea-level series to a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := domain.BuildSeries(dataset.Measurements())
			if err != nil {
				return fmt.Errorf("build series: %w", err)
			}

			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("create %s: %w", outputFile, err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, points); err != nil {
				return fmt.Errorf("write %s: %w", outputFile, err)
			}

			cmd.Printf("wrote %d rows to %s\n", len(points), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", export.DefaultFilename, "Output CSV file path")
	return cmd
}
