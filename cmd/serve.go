package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/dunwich/arkham-central-mcp/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Starting ArkhamCentral MCP server on stdio...")

	return mcpserver.Serve(newService())
}
