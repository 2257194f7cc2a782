package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cinematch/internal/adapters/driving/mcp"
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

The server talks JSON-RPC over stdio; it opens no network port. The catalog
is indexed once at startup.

Tools:
  recommend   movies similar to a title (set "posters" for poster links)

Resources:
  cinematch://catalog   catalog size and vocabulary size

Client configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "cinematch": {
        "command": "/path/to/cinematch",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

// serveMCP is replaced in tests so the server does not read stdin.
var serveMCP = func(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx)
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireDeps(); err != nil {
		return err
	}

	recommender, err := loadRecommender(cmd.Context(), 0)
	if err != nil {
		return err
	}

	ports := &mcp.Ports{
		Recommend: recommender,
		Posters:   deps.Posters,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if err := serveMCP(cmd.Context(), server); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
