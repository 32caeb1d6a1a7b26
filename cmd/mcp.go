package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamfit/teamfit/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Teamfit MCP server",
	Long:  `Launch an MCP server that allows AI agents to run skill-fit analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stage diagnostics stay on stderr, so the shared setup is safe to
		// reuse without polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
