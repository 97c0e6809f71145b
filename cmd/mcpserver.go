package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"palettectl/internal/mcptools"

	"github.com/spf13/cobra"
)

var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Serve the palette tools over MCP stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout exposing the
palette and color tools. Logs are written to stderr.

Example MCP client configuration:
  {
    "mcpServers": {
      "palettectl": {
        "command": "palettectl",
        "args": ["mcp-server"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServer,
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := mcptools.NewServer(appConfig, rootCmd.Version)
	return mcptools.ServeStdio(ctx, s, os.Stdin, os.Stdout)
}

func init() {
	rootCmd.AddCommand(mcpServerCmd)
}
