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

// WriteAssessmentResults outputs the composite assessment, dispatching based on the output format configured.
func WriteAssessmentResults(result schema.AssessmentOutput, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForAssessment(csvWriter, result.Composite, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssessmentTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// sourceRows returns the breakdown in fixed display order.
func sourceRows(c schema.CompositeHealthScore) []struct {
	Kind      schema.SourceKind
	Breakdown schema.SourceBreakdown
} {
	return []struct {
		Kind      schema.SourceKind
		Breakdown schema.SourceBreakdown
	}{
		{schema.SourcePopulation, c.Population},
		{schema.SourceHabitat, c.Habitat},
		{schema.SourceDiversity, c.Diversity},
	}
}

// writeAssessmentTable generates and writes the human-readable assessment view.
func writeAssessmentTable(result schema.AssessmentOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	c := result.Composite

	name := c.MPAName
	if name == "" {
		name = c.MPAID
	}
	if _, err := fmt.Fprintf(writer, "Marine health assessment for %s\n", name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Composite score: %d/100 %s (confidence: %s)\n\n",
		c.Score, scoreLabel(float64(c.Score), cfg), c.Confidence); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Source", "Score", "Weight", "Available"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range sourceRows(c) {
		score := "-"
		if row.Breakdown.Available {
			score = fmtFloat(row.Breakdown.Score)
		}
		data = append(data, []string{
			string(row.Kind),
			score,
			fmtFloat(row.Breakdown.WeightPercent) + "%",
			strconv.FormatBool(row.Breakdown.Available),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Sources available: %d/3. Indicator species: %d. Records processed: %d\n",
		c.SourcesAvailable, result.Indicator.SpeciesCount, result.Abundance.RecordCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Assessment completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForAssessment writes the composite breakdown in CSV format.
func writeCSVResultsForAssessment(w *csv.Writer, c schema.CompositeHealthScore, fmtFloat func(float64) string) error {
	header := []string{
		"mpa_id",
		"mpa_name",
		"source",
		"score",
		"weight_percent",
		"available",
		"composite_score",
		"confidence",
		"calculated_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range sourceRows(c) {
		rec := []string{
			c.MPAID,
			c.MPAName,
			string(row.Kind),
			fmtFloat(row.Breakdown.Score),
			fmtFloat(row.Breakdown.WeightPercent),
			strconv.FormatBool(row.Breakdown.Available),
			strconv.Itoa(c.Score),
			string(c.Confidence),
			c.CalculatedAt.Format(contract.DateTimeFormat),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
