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

// WriteSpeciesResults outputs species abundance trends, dispatching based on the output format configured.
func WriteSpeciesResults(summary schema.AbundanceSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	trends := summary.Trends
	if cfg.ResultLimit > 0 && len(trends) > cfg.ResultLimit {
		trends = trends[:cfg.ResultLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForSpecies(w, summary, trends)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForSpecies(csvWriter, trends, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSpeciesTable(summary, trends, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeSpeciesTable generates and writes the human-readable trends table.
func writeSpeciesTable(summary schema.AbundanceSummary, trends []schema.AbundanceTrend, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Species", "Trend", "Change", "Records", "Confidence"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, tr := range trends {
		change := "-"
		if tr.Trend != schema.TrendInsufficientData {
			change = fmtFloat(tr.ChangePercent) + "%"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(tr.ScientificName, nameWidth),
			string(tr.Trend),
			change,
			fmt.Sprintf(intFmt, tr.TotalRecords),
			string(tr.Confidence),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d of %d species (records: %d, Shannon index: %s)\n",
		len(trends), summary.SpeciesCount, summary.RecordCount, fmtFloat(summary.ShannonIndex)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Biodiversity score: %s %s. Data quality: %s\n",
		fmtFloat(summary.Score), scoreLabel(summary.Score, cfg), summary.DataQuality); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForSpecies writes the trend list in CSV format.
func writeCSVResultsForSpecies(w *csv.Writer, trends []schema.AbundanceTrend, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"scientific_name",
		"common_name",
		"trend",
		"change_percent",
		"total_records",
		"confidence",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, tr := range trends {
		rec := []string{
			strconv.Itoa(i + 1),
			tr.ScientificName,
			tr.CommonName,
			string(tr.Trend),
			fmtFloat(tr.ChangePercent),
			fmt.Sprintf(intFmt, tr.TotalRecords),
			string(tr.Confidence),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForSpecies writes the trends in JSON format with ranks added.
func writeJSONResultsForSpecies(w io.Writer, summary schema.AbundanceSummary, trends []schema.AbundanceTrend) error {
	type JSONTrendResult struct {
		Rank int `json:"rank"`
		schema.AbundanceTrend
	}

	ranked := make([]JSONTrendResult, len(trends))
	for i, tr := range trends {
		ranked[i] = JSONTrendResult{Rank: i + 1, AbundanceTrend: tr}
	}

	output := struct {
		Trends       []JSONTrendResult  `json:"trends"`
		Score        float64            `json:"score"`
		SpeciesCount int                `json:"species_count"`
		RecordCount  int                `json:"record_count"`
		ShannonIndex float64            `json:"shannon_index"`
		DataQuality  schema.DataQuality `json:"data_quality"`
	}{
		Trends:       ranked,
		Score:        summary.Score,
		SpeciesCount: summary.SpeciesCount,
		RecordCount:  summary.RecordCount,
		ShannonIndex: summary.ShannonIndex,
		DataQuality:  summary.DataQuality,
	}

	return writeJSON(w, output)
}
