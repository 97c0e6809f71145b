package mcptools

import (
	"context"
	"io"

	"palettectl/internal/config"
	"palettectl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const serverName = "palettectl"

// NewServer creates an MCP server with all palette tools registered.
func NewServer(cfg config.PalettectlConfig, version string) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
	)
	NewPaletteTools(cfg).Register(mcpServer)
	return mcpServer
}

// ServeStdio serves s over the given streams until ctx is done or stdin closes.
func ServeStdio(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	logging.Info(subsystem, "Starting MCP server on stdio")
	stdioServer := server.NewStdioServer(s)
	err := stdioServer.Listen(ctx, stdin, stdout)
	if err != nil && ctx.Err() != nil {
		// Cancellation is a normal shutdown
		return nil
	}
	return err
}
