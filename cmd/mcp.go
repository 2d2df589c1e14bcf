package cmd

import (
	"github.com/oceanpulse/oceanpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Ocean PULSE MCP server",
	Long:  `Launch an MCP server that allows AI agents to assess marine protected areas via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Each tool call supplies its own MPA; seed a placeholder so the
		// shared validation can run. Header logs are suppressed per request
		// to avoid polluting stdio which is used for the protocol.
		if len(args) == 0 {
			args = []string{"mcp-session"}
		}
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
