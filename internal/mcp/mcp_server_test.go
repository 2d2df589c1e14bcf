package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	mcp_internal "github.com/oceanpulse/oceanpulse/internal/mcp"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		StartTime:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SourceTimeout: 5 * time.Second,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	callTool := func(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
		t.Helper()
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}

	t.Run("get_health_score missing mpa_id", func(t *testing.T) {
		res := callTool(t, "get_health_score", map[string]any{
			"mpa_id": "",
			"lat":    33.9,
			"lon":    -119.7,
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "mpa_id is required")
	})

	t.Run("get_health_score invalid latitude", func(t *testing.T) {
		res := callTool(t, "get_health_score", map[string]any{
			"mpa_id": "mpa-001",
			"lat":    133.9,
			"lon":    -119.7,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "latitude must be between -90 and 90")
	})

	t.Run("get_species_trends invalid start date", func(t *testing.T) {
		res := callTool(t, "get_species_trends", map[string]any{
			"mpa_id": "mpa-001",
			"lat":    33.9,
			"lon":    -119.7,
			"start":  "last tuesday",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid start date")
	})

	t.Run("get_habitat_summary radius out of range", func(t *testing.T) {
		res := callTool(t, "get_habitat_summary", map[string]any{
			"mpa_id":    "mpa-001",
			"lat":       33.9,
			"lon":       -119.7,
			"radius_km": 9000.0,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "radius_km must be between")
	})

	t.Run("get_tracking_summary inverted window", func(t *testing.T) {
		res := callTool(t, "get_tracking_summary", map[string]any{
			"mpa_id": "mpa-001",
			"lat":    33.9,
			"lon":    -119.7,
			"start":  "2024-06-01T00:00:00Z",
			"end":    "2023-06-01T00:00:00Z",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "start time cannot be after end time")
	})

	t.Run("get_indicator_summary missing mpa_id", func(t *testing.T) {
		res := callTool(t, "get_indicator_summary", map[string]any{
			"lat": 33.9,
			"lon": -119.7,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "mpa_id is required")
	})
}
