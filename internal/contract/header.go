package contract

import "fmt"

// LogAssessmentHeader prints a summary of what is about to be assessed.
func LogAssessmentHeader(cfg *Config) {
	// Line 1: The MPA identity and geometry
	fmt.Printf("🌊 MPA: %s (%.3f, %.3f; radius %.0f km)\n", cfg.MPA.Name, cfg.MPA.Lat, cfg.MPA.Lon, cfg.MPA.RadiusKm)

	// Line 2: The actual date range being assessed
	fmt.Printf("📅 Range: %s → %s\n", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
}
