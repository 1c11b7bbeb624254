package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dunwich/arkham-central-mcp/internal/search"
	"github.com/dunwich/arkham-central-mcp/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Search scenarios by name (substring, case-insensitive)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("type", "scenario", "Object type: scenario, card, investigator")
	searchCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	typeArg, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")

	typ, err := search.ParseQueryType(typeArg)
	if err != nil {
		return err
	}

	svc := newService()

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Searching %ss matching %q...", typ, name))
	results, err := search.Dispatch(context.Background(), svc, typ, name)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch format {
	case "table":
		printScenarioTable(results)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(results)
	}

	return nil
}
