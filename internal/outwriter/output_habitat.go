package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// WriteHabitatResults outputs the habitat summary, dispatching based on the output format configured.
func WriteHabitatResults(summary schema.HabitatSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForHabitat(csvWriter, summary, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHabitatTable(summary, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeHabitatTable generates and writes the human-readable habitat view.
func writeHabitatTable(summary schema.HabitatSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Parameter", "Current", "Unit", "Avg", "Min", "Max", "Trend", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range summary.Parameters {
		status := "-"
		if p.Threshold != nil {
			status = string(p.Threshold.Status)
		}
		data = append(data, []string{
			string(p.Type),
			fmtFloat(p.Current),
			p.Unit,
			fmtFloat(p.Average),
			fmtFloat(p.Min),
			fmtFloat(p.Max),
			string(p.Trend),
			status,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(summary.Anomalies) > 0 {
		if _, err := fmt.Fprintf(writer, "\nAnomalies (%d):\n", len(summary.Anomalies)); err != nil {
			return err
		}
		for _, a := range summary.Anomalies {
			if _, err := fmt.Fprintf(writer, "  %s %s [%s] %s to %s: value %s, baseline %s\n",
				a.Parameter, a.Kind, a.Severity, a.StartMonth, a.EndMonth,
				fmtFloat(a.Value), fmtFloat(a.Baseline)); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "\nHabitat score: %s %s. Data quality: %s\n",
		fmtFloat(summary.Score), scoreLabel(summary.Score, cfg), summary.DataQuality); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForHabitat writes the parameter list in CSV format.
func writeCSVResultsForHabitat(w *csv.Writer, summary schema.HabitatSummary, fmtFloat func(float64) string) error {
	header := []string{
		"parameter",
		"current",
		"unit",
		"average",
		"min",
		"max",
		"trend",
		"status",
		"habitat_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range summary.Parameters {
		status := ""
		if p.Threshold != nil {
			status = string(p.Threshold.Status)
		}
		rec := []string{
			string(p.Type),
			fmtFloat(p.Current),
			p.Unit,
			fmtFloat(p.Average),
			fmtFloat(p.Min),
			fmtFloat(p.Max),
			string(p.Trend),
			status,
			fmtFloat(summary.Score),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
