package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dunwich/arkham-central-mcp/internal/ui"
)

var getCmd = &cobra.Command{
	Use:   "get [scenario-id]",
	Short: "Get one scenario's page content by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().String("format", "html", "Output format: html, json")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id := args[0]
	format, _ := cmd.Flags().GetString("format")
	svc := newService()

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching scenario %q...", id))
	detail, err := svc.GetScenario(context.Background(), id)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(detail)
	default:
		fmt.Fprintln(os.Stdout, detail.Content)
	}

	return nil
}
