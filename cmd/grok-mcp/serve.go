package main

import (
	"context"
	"errors"
	stdlog "log"
	"os"
	"os/signal"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/sandevgo/grok-mcp/internal/config"
	"github.com/sandevgo/grok-mcp/internal/tools"
	"github.com/sandevgo/grok-mcp/internal/xai"
	"github.com/sandevgo/grok-mcp/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long:  `Loads the API key, registers the Grok tools and serves MCP JSON-RPC on stdin/stdout until the transport closes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		path, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			logger.Error().Err(err).Msg("failed to load config")
			return err
		}

		client := xai.New(cfg.APIKey, cfg.BaseURL)

		mcpServer := server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(false),
			server.WithInstructions("xAI Grok MCP server. Tools: chat, chat_with_vision, chat_with_search, embedding, list_models."),
		)
		tools.New(client).Register(mcpServer)

		stdio := server.NewStdioServer(mcpServer)
		stdio.SetErrorLogger(stdlog.New(logger, "", 0))
		stdio.SetContextFunc(func(reqCtx context.Context) context.Context {
			return logger.WithContext(reqCtx)
		})

		logger.Info().Msg("starting MCP server on stdio")
		if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		logger.Info().Msg("MCP server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
