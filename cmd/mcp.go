package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tvibe/internal/app"
	"tvibe/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	var sseAddr string
	c := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the theme collection over the Model Context Protocol",
		Long: `Starts an MCP server exposing the tools list_themes, get_theme,
search_themes and random_theme. The server speaks on stdin/stdout unless
--sse is given, in which case it listens for SSE clients on that address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout belongs to the protocol.
			cfg := app.NewConfig(configPath, logLevel, app.Options{}, os.Stderr)
			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			tools := mcpserver.NewThemeTools(application.Services().Collection, cfg.TvibeConfig.DeriveParams(), nil)
			s := mcpserver.NewServer(rootCmd.Version, tools)
			if sseAddr == "" {
				return mcpserver.ServeStdio(s)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return mcpserver.ServeSSE(ctx, s, sseAddr)
		},
	}
	c.Flags().StringVar(&sseAddr, "sse", "", "serve over SSE on this address (e.g. localhost:8090) instead of stdio")
	return c
}
