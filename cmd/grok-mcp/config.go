package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/grok-mcp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Printf("config file: %s\n\nexample contents:\n\n  api_key = \"xai-...\"\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
