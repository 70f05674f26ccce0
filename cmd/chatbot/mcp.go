package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ic1618/chat-bot/internal/config"
	"github.com/ic1618/chat-bot/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the chatbot as an MCP Server so that AI agents can hold the conversation through tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Logs go to stderr so they never corrupt JSON-RPC on stdout.
		a, err := setup(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.close()

		transport, _ := cmd.Flags().GetString("transport")
		srv := mcp.NewServer(a.bot,
			mcp.WithLogger(a.logger),
			mcp.WithMaxInputSize(a.cfg.MaxInputSize),
		)

		switch transport {
		case "stdio":
			a.logger.Info("Starting chatbot MCP Server (Stdio)...")
			return srv.ServeStdio()
		case "sse":
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ServeSSE(ctx, a.cfg.Addr)
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport type (stdio, sse)")
	mcpCmd.Flags().StringP("addr", "a", config.DefaultAddr, "Address to listen on (for SSE)")
}
