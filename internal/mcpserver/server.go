// Package mcpserver serves the theme collection over the Model Context
// Protocol, on stdio or over SSE.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tvibe/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// NewServer creates an MCP server with the theme tools registered.
func NewServer(version string, tools *ThemeTools) *server.MCPServer {
	s := server.NewMCPServer(
		"tvibe",
		version,
		server.WithToolCapabilities(true),
	)
	serverTools := tools.ServerTools()
	logging.Debug("MCP", "Registering %d tools", len(serverTools))
	s.AddTools(serverTools...)
	return s
}

// ServeStdio serves s on stdin/stdout until the input closes.
func ServeStdio(s *server.MCPServer) error {
	logging.Info("MCP", "Serving on stdio")
	return server.ServeStdio(s)
}

// ServeSSE serves s over HTTP server-sent events on addr until ctx is done.
func ServeSSE(ctx context.Context, s *server.MCPServer, addr string) error {
	sse := server.NewSSEServer(s,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		logging.Info("MCP", "Serving SSE on http://%s/sse", addr)
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sse server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.Info("MCP", "Shutting down SSE server")
		return sse.Shutdown(shutdownCtx)
	}
}
