// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/oceanpulse/oceanpulse/internal/contract"
)

// NewMCPServer initializes and configures the Ocean PULSE MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Ocean PULSE Assessment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_health_score ---
	s.AddTool(mcp.NewTool("get_health_score",
		mcp.WithDescription("Run a full marine health assessment for an MPA and return the composite score with its per-source breakdown."),
		mcp.WithString("mpa_id", mcp.Description("Identifier of the Marine Protected Area."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Human-readable MPA name (defaults to the identifier).")),
		mcp.WithNumber("lat", mcp.Description("MPA center latitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("lon", mcp.Description("MPA center longitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("radius_km", mcp.Description("Assessment radius in kilometers (defaults to 50).")),
		mcp.WithString("start", mcp.Description("Window start as RFC3339 (defaults to the configured lookback).")),
		mcp.WithString("end", mcp.Description("Window end as RFC3339 (defaults to now).")),
	), h.handleGetHealthScore)

	// --- 2. Tool: get_species_trends ---
	s.AddTool(mcp.NewTool("get_species_trends",
		mcp.WithDescription("Analyze occurrence records to classify per-species abundance trends and the biodiversity score."),
		mcp.WithString("mpa_id", mcp.Description("Identifier of the Marine Protected Area."), mcp.Required()),
		mcp.WithNumber("lat", mcp.Description("MPA center latitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("lon", mcp.Description("MPA center longitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("radius_km", mcp.Description("Assessment radius in kilometers.")),
		mcp.WithString("start", mcp.Description("Window start as RFC3339.")),
		mcp.WithString("end", mcp.Description("Window end as RFC3339.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of species returned.")),
	), h.handleGetSpeciesTrends)

	// --- 3. Tool: get_habitat_summary ---
	s.AddTool(mcp.NewTool("get_habitat_summary",
		mcp.WithDescription("Summarize environmental measurements into per-parameter statistics, threshold statuses, anomalies, and the habitat score."),
		mcp.WithString("mpa_id", mcp.Description("Identifier of the Marine Protected Area."), mcp.Required()),
		mcp.WithNumber("lat", mcp.Description("MPA center latitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("lon", mcp.Description("MPA center longitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("radius_km", mcp.Description("Assessment radius in kilometers.")),
		mcp.WithString("start", mcp.Description("Window start as RFC3339.")),
		mcp.WithString("end", mcp.Description("Window end as RFC3339.")),
	), h.handleGetHabitatSummary)

	// --- 4. Tool: get_tracking_summary ---
	s.AddTool(mcp.NewTool("get_tracking_summary",
		mcp.WithDescription("Summarize animal tracking fixes into per-individual residency metrics and a density grid."),
		mcp.WithString("mpa_id", mcp.Description("Identifier of the Marine Protected Area."), mcp.Required()),
		mcp.WithNumber("lat", mcp.Description("MPA center latitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("lon", mcp.Description("MPA center longitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("radius_km", mcp.Description("Assessment radius in kilometers.")),
		mcp.WithNumber("cell_size", mcp.Description("Density grid cell size in degrees.")),
		mcp.WithString("start", mcp.Description("Window start as RFC3339.")),
		mcp.WithString("end", mcp.Description("Window end as RFC3339.")),
	), h.handleGetTrackingSummary)

	// --- 5. Tool: get_indicator_summary ---
	s.AddTool(mcp.NewTool("get_indicator_summary",
		mcp.WithDescription("Score the curated indicator species present in the MPA, weighted by ecological category."),
		mcp.WithString("mpa_id", mcp.Description("Identifier of the Marine Protected Area."), mcp.Required()),
		mcp.WithNumber("lat", mcp.Description("MPA center latitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("lon", mcp.Description("MPA center longitude in decimal degrees."), mcp.Required()),
		mcp.WithNumber("radius_km", mcp.Description("Assessment radius in kilometers.")),
		mcp.WithString("ecosystems", mcp.Description("Comma-separated ecosystem tags to filter the catalog (e.g. 'kelp forest,rocky reef').")),
		mcp.WithString("start", mcp.Description("Window start as RFC3339.")),
		mcp.WithString("end", mcp.Description("Window end as RFC3339.")),
	), h.handleGetIndicatorSummary)

	return s
}

// StartMCPServer starts the Ocean PULSE MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
