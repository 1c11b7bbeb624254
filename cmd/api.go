package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dunwich/arkham-central-mcp/api"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long:  "Serve /scenarios, /scenarios/{id} and /search over plain HTTP.",
	RunE:  runAPI,
}

func init() {
	apiCmd.Flags().String("port", "", "HTTP port (default from $ARKHAM_API_PORT or 8000)")
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	port := cfg.APIPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}

	srv := api.NewServer(newService(), slog.Default())
	return srv.ListenAndServe(fmt.Sprintf(":%s", port))
}
