package outwriter

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// metricsRenderModel is the JSON shape of the scoring definitions.
type metricsRenderModel struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	SourceWeights   map[string]float64 `json:"source_weights"`
	CategoryWeights map[string]float64 `json:"category_weights"`
	Thresholds      map[string]any     `json:"thresholds"`
}

// WriteMetricsDefinitions prints the scoring weights and environmental
// thresholds currently in effect.
func WriteMetricsDefinitions(sourceWeights map[schema.SourceKind]float64, categoryWeights map[schema.SpeciesCategory]float64, cfg *contract.Config) error {
	if sourceWeights == nil {
		sourceWeights = schema.GetCompositeBaseWeights()
	}
	if categoryWeights == nil {
		categoryWeights = schema.GetCategoryWeights()
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, buildMetricsRenderModel(sourceWeights, categoryWeights))
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(sourceWeights, categoryWeights, w)
		}, "Wrote metrics")
	}
}

// buildMetricsRenderModel constructs the complete render model with all processed data.
func buildMetricsRenderModel(sourceWeights map[schema.SourceKind]float64, categoryWeights map[schema.SpeciesCategory]float64) *metricsRenderModel {
	sw := make(map[string]float64, len(sourceWeights))
	for k, v := range sourceWeights {
		sw[string(k)] = v
	}
	cw := make(map[string]float64, len(categoryWeights))
	for k, v := range categoryWeights {
		cw[string(k)] = v
	}
	defaults := schema.DefaultThresholds()
	th := make(map[string]any, len(defaults))
	for param, t := range defaults {
		th[string(param)] = map[string]float64{
			"warn_min": t.WarnMin,
			"warn_max": t.WarnMax,
			"crit_min": t.CritMin,
			"crit_max": t.CritMax,
		}
	}
	return &metricsRenderModel{
		Title:           "Ocean PULSE Scoring Definitions",
		Description:     "Composite score = weighted sum of available domain scores; missing domains redistribute their weight",
		SourceWeights:   sw,
		CategoryWeights: cw,
		Thresholds:      th,
	}
}

// writeMetricsText renders the definitions as human-readable tables.
func writeMetricsText(sourceWeights map[schema.SourceKind]float64, categoryWeights map[schema.SpeciesCategory]float64, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, "Composite source weights (redistributed when a source is unavailable):"); err != nil {
		return err
	}
	for _, kind := range schema.AllSources {
		if _, err := fmt.Fprintf(writer, "  %-12s %.2f\n", kind, sourceWeights[kind]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(writer, "\nIndicator category weights:"); err != nil {
		return err
	}
	categories := make([]schema.SpeciesCategory, 0, len(categoryWeights))
	for cat := range categoryWeights {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categoryWeights[categories[i]] != categoryWeights[categories[j]] {
			return categoryWeights[categories[i]] > categoryWeights[categories[j]]
		}
		return categories[i] < categories[j]
	})
	for _, cat := range categories {
		if _, err := fmt.Fprintf(writer, "  %-15s %.2f\n", cat, categoryWeights[cat]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(writer, "\nEnvironmental thresholds:"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Parameter", "Warn Min", "Warn Max", "Crit Min", "Crit Max"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	defaults := schema.DefaultThresholds()
	params := make([]schema.ParameterType, 0, len(defaults))
	for param := range defaults {
		params = append(params, param)
	}
	sort.Slice(params, func(i, j int) bool { return params[i] < params[j] })

	var data [][]string
	for _, param := range params {
		t := defaults[param]
		data = append(data, []string{
			string(param),
			fmt.Sprintf("%.2f", t.WarnMin),
			fmt.Sprintf("%.2f", t.WarnMax),
			fmt.Sprintf("%.2f", t.CritMin),
			fmt.Sprintf("%.2f", t.CritMax),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
