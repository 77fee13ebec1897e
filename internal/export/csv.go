// Package export renders the derived sea-level series as a flat
// delimited file for download by dashboard users.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/coastwatch/sea-level-service/internal/domain"
)

// DefaultFilename is the download name offered by the serving layer.
const DefaultFilename = "korea_sea_level.csv"

// WriteCSV writes the series with columns year, cumulative_rise_cm,
// annual_delta_mm. The undefined baseline delta is written as an empty
// field, never as zero.
func WriteCSV(w io.Writer, points []domain.SeriesPoint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"year", "cumulative_rise_cm", "annual_delta_mm"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range points {
		record := []string{
			strconv.Itoa(p.Year),
			strconv.FormatFloat(p.CumulativeRiseCM, 'f', 1, 64),
			"",
		}
		if p.AnnualDeltaMM != nil {
			record[2] = strconv.FormatFloat(*p.AnnualDeltaMM, 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row for year %d: %w", p.Year, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
