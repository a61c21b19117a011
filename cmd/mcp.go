package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the assistant to MCP clients over stdio",
	Run: func(_ *cobra.Command, _ []string) {
		logger, _, assistant := bootstrap()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := mcp.NewServer(assistant, version, logger)
		if err != nil {
			logger.Fatal("creating mcp server", zap.Error(err))
		}

		if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Fatal("serving mcp", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
