package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and exposes the tools
extract_tags, process_column, format_tags and meta_description, plus the
tagsmith://settings resource.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "tagsmith": {
        "command": "/path/to/tagsmith",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer(s *Services) (*mcp.Server, error) {
	return mcp.NewServer(&mcp.Ports{
		Tags:     s.Tags,
		CSV:      s.CSV,
		Settings: s.Settings,
	})
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	server, err := newMCPServer(s)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
