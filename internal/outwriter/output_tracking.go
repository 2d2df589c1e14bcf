package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// WriteTrackingResults outputs the tracking summary, dispatching based on the output format configured.
func WriteTrackingResults(summary schema.TrackingSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	individuals := summary.Individuals
	if cfg.ResultLimit > 0 && len(individuals) > cfg.ResultLimit {
		individuals = individuals[:cfg.ResultLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForTracking(csvWriter, individuals, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrackingTable(summary, individuals, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeTrackingTable generates and writes the human-readable residency table.
func writeTrackingTable(summary schema.TrackingSummary, individuals []schema.IndividualSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Individual", "Species", "Fixes", "Inside", "Residency", "Days", "Months"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, ind := range individuals {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(ind.IndividualID, nameWidth),
			contract.TruncateName(ind.Species, nameWidth),
			fmt.Sprintf(intFmt, ind.Points),
			fmt.Sprintf(intFmt, ind.PointsInside),
			fmtFloat(ind.Residency * 100.0),
			fmt.Sprintf(intFmt, ind.DaySpan),
			fmt.Sprintf(intFmt, ind.MonthsPresent),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d individuals (%d fixes, %d grid cells at %s deg)\n",
		len(individuals), summary.PointCount, len(summary.Grid), fmtFloat(summary.CellSizeDeg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForTracking writes the residency list in CSV format.
func writeCSVResultsForTracking(w *csv.Writer, individuals []schema.IndividualSummary, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"individual_id",
		"species",
		"points",
		"points_inside",
		"residency",
		"day_span",
		"months_present",
		"first_seen",
		"last_seen",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, ind := range individuals {
		rec := []string{
			strconv.Itoa(i + 1),
			ind.IndividualID,
			ind.Species,
			fmt.Sprintf(intFmt, ind.Points),
			fmt.Sprintf(intFmt, ind.PointsInside),
			fmtFloat(ind.Residency),
			fmt.Sprintf(intFmt, ind.DaySpan),
			fmt.Sprintf(intFmt, ind.MonthsPresent),
			ind.FirstSeen.Format(contract.DateTimeFormat),
			ind.LastSeen.Format(contract.DateTimeFormat),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
