package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// configFromRequest clones the base config and overlays the per-call MPA
// identity, geometry, and window from the tool arguments.
func (h *toolHandler) configFromRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	id := strings.TrimSpace(request.GetString("mpa_id", ""))
	if id == "" {
		return nil, fmt.Errorf("mpa_id is required")
	}
	cfg.MPA.ID = id
	cfg.MPA.Name = request.GetString("name", "")
	if cfg.MPA.Name == "" {
		cfg.MPA.Name = id
	}

	cfg.MPA.Lat = request.GetFloat("lat", 0)
	cfg.MPA.Lon = request.GetFloat("lon", 0)
	if cfg.MPA.Lat < -90 || cfg.MPA.Lat > 90 {
		return nil, fmt.Errorf("latitude must be between -90 and 90 (received %g)", cfg.MPA.Lat)
	}
	if cfg.MPA.Lon < -180 || cfg.MPA.Lon > 180 {
		return nil, fmt.Errorf("longitude must be between -180 and 180 (received %g)", cfg.MPA.Lon)
	}

	cfg.MPA.RadiusKm = request.GetFloat("radius_km", contract.DefaultRadiusKm)
	if cfg.MPA.RadiusKm <= 0 || cfg.MPA.RadiusKm > contract.MaxRadiusKm {
		return nil, fmt.Errorf("radius_km must be between 0 and %g (received %g)", contract.MaxRadiusKm, cfg.MPA.RadiusKm)
	}

	if s := request.GetString("start", ""); s != "" {
		t, err := time.Parse(contract.DateTimeFormat, s)
		if err != nil {
			return nil, fmt.Errorf("invalid start date '%s': %w", s, err)
		}
		cfg.StartTime = t
	}
	if s := request.GetString("end", ""); s != "" {
		t, err := time.Parse(contract.DateTimeFormat, s)
		if err != nil {
			return nil, fmt.Errorf("invalid end date '%s': %w", s, err)
		}
		cfg.EndTime = t
	}
	if cfg.StartTime.After(cfg.EndTime) {
		return nil, fmt.Errorf("start time cannot be after end time")
	}

	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if cs := request.GetFloat("cell_size", 0); cs > 0 {
		cfg.CellSizeDeg = cs
	}
	if eco := request.GetString("ecosystems", ""); eco != "" {
		cfg.Ecosystems = nil
		for _, part := range strings.Split(eco, ",") {
			if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
				cfg.Ecosystems = append(cfg.Ecosystems, trimmed)
			}
		}
	}

	return cfg, nil
}

func (h *toolHandler) handleGetHealthScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid assessment parameters: %v", err)), nil
	}

	output, _, err := core.GetAssessmentResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output.Composite, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSpeciesTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trend parameters: %v", err)), nil
	}

	summary, _, err := core.GetSpeciesResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	if cfg.ResultLimit > 0 && len(summary.Trends) > cfg.ResultLimit {
		summary.Trends = summary.Trends[:cfg.ResultLimit]
	}
	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHabitatSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid habitat parameters: %v", err)), nil
	}

	summary, _, err := core.GetHabitatResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("habitat analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrackingSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid tracking parameters: %v", err)), nil
	}

	summary, _, err := core.GetTrackingResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("tracking analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetIndicatorSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid indicator parameters: %v", err)), nil
	}

	summary, _, err := core.GetIndicatorResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("indicator analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
