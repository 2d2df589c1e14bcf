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

// WriteIndicatorResults outputs the indicator-species summary, dispatching based on the output format configured.
func WriteIndicatorResults(summary schema.IndicatorSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForIndicators(csvWriter, summary, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndicatorTable(summary, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeIndicatorTable generates and writes the human-readable category and presence view.
func writeIndicatorTable(summary schema.IndicatorSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Category", "Score", "Max", "Present", "Total", "Weight"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cat := range summary.Categories {
		data = append(data, []string{
			string(cat.Category),
			fmtFloat(cat.Score),
			fmtFloat(cat.MaxScore),
			fmt.Sprintf(intFmt, cat.SpeciesPresent),
			fmt.Sprintf(intFmt, cat.SpeciesTotal),
			fmtFloat(cat.Weight),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	presence := tablewriter.NewWriter(writer)
	presence.Header([]string{"Species", "Present", "Occurrences", "Confidence"})
	presence.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var presenceData [][]string
	for _, p := range summary.Presences {
		presenceData = append(presenceData, []string{
			contract.TruncateName(p.ScientificName, nameWidth),
			strconv.FormatBool(p.Present),
			fmt.Sprintf(intFmt, p.Occurrences),
			string(p.Confidence),
		})
	}
	if err := presence.Bulk(presenceData); err != nil {
		return err
	}
	if err := presence.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Indicator score: %s %s (%d species, %d occurrences). Data quality: %s\n",
		fmtFloat(summary.Percentage), scoreLabel(summary.Percentage, cfg),
		summary.SpeciesCount, summary.OccurrenceCount, summary.DataQuality); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForIndicators writes the per-species presence list in CSV format.
func writeCSVResultsForIndicators(w *csv.Writer, summary schema.IndicatorSummary, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"species_id",
		"scientific_name",
		"present",
		"occurrences",
		"confidence",
		"last_seen",
		"indicator_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range summary.Presences {
		lastSeen := ""
		if !p.LastSeen.IsZero() {
			lastSeen = p.LastSeen.Format(contract.DateTimeFormat)
		}
		rec := []string{
			p.SpeciesID,
			p.ScientificName,
			strconv.FormatBool(p.Present),
			fmt.Sprintf(intFmt, p.Occurrences),
			string(p.Confidence),
			lastSeen,
			fmtFloat(summary.Percentage),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
