package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/dunwich/arkham-central-mcp/mcp"
)

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Start MCP HTTP server",
	Long:  "Start the MCP server over streamable HTTP for remote clients.",
	RunE:  runServeHTTP,
}

func init() {
	serveHTTPCmd.Flags().String("port", "", "HTTP port (default from $PORT or 8080)")
	rootCmd.AddCommand(serveHTTPCmd)
}

func runServeHTTP(cmd *cobra.Command, args []string) error {
	port := cfg.HTTPPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}

	addr := fmt.Sprintf(":%s", port)
	return mcpserver.ServeHTTP(newService(), addr, cfg.APIKey)
}
