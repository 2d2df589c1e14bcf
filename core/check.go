package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// ExecuteCheck runs the check command for monitoring pipelines. It performs a
// full assessment, compares the composite score against the configured
// minimum, and returns an error when the MPA falls below it so the process
// exits non-zero.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	output, duration, err := GetAssessmentResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return evaluateCheck(os.Stdout, output.Composite, cfg, duration)
}

// evaluateCheck prints the check outcome and gates on the minimum score.
func evaluateCheck(w io.Writer, c schema.CompositeHealthScore, cfg *contract.Config, duration time.Duration) error {
	printCheckResult(w, c, cfg, duration)

	if float64(c.Score) < cfg.MinScore {
		return fmt.Errorf("composite score %d is below minimum %.1f", c.Score, cfg.MinScore)
	}
	return nil
}

// printCheckResult prints the check outcome in a concise format suitable for CI/CD.
func printCheckResult(w io.Writer, c schema.CompositeHealthScore, cfg *contract.Config, duration time.Duration) {
	fmt.Fprintln(w, "Health Check Results:")

	// Define labels and values for dynamic padding
	labels := []string{"MPA:", "Score:", "Minimum:", "Confidence:", "Sources:"}
	values := []any{
		c.MPAName,
		fmt.Sprintf("%d/100", c.Score),
		fmt.Sprintf("%.1f", cfg.MinScore),
		c.Confidence,
		fmt.Sprintf("%d/3", c.SourcesAvailable),
	}

	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}
	for i, label := range labels {
		fmt.Fprintf(w, "  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Fprintf(w, "\nChecked in %v\n\n", duration)

	if float64(c.Score) >= cfg.MinScore {
		fmt.Fprintln(w, "✅ Composite score meets the minimum")
	} else {
		fmt.Fprintln(w, "❌ Composite score is below the minimum")
	}
}
