package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandevgo/grok-mcp/pkg/log"
)

const (
	serverName    = "grok-chat"
	serverVersion = "0.3.0"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "grok-mcp",
	Short: "MCP server for the xAI Grok API",
	Long:  `grok-mcp exposes the xAI Grok chat, vision, search and embedding APIs as MCP tools over stdio.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	return log.NewContextWithLogger(ctx, debug)
}
