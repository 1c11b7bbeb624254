package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dunwich/arkham-central-mcp/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all fan-created scenarios",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	svc := newService()

	spin := ui.NewSpinner()
	spin.Start("Fetching scenario listing from arkhamcentral.com...")
	scenarios, err := svc.ListScenarios(context.Background())
	spin.Stop()
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	switch format {
	case "table":
		printScenarioTable(scenarios)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(scenarios)
	}

	return nil
}
