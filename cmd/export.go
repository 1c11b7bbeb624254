package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dunwich/arkham-central-mcp/internal/models"
	"github.com/dunwich/arkham-central-mcp/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch every scenario's content and write a JSON dump",
	Long:  "Fetches the listing, then every scenario page, under the configured rate limit. Output is a JSON array of {id, name, content}.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
	exportCmd.Flags().Int("concurrency", 0, "Concurrent page fetches (default from config)")
	rootCmd.AddCommand(exportCmd)
}

type exportEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = cfg.MaxConcurrent
	}

	svc := newService()
	ctx := context.Background()

	spin := ui.NewSpinner()
	spin.Start("Fetching scenario listing...")
	scenarios, err := svc.ListScenarios(ctx)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	spin.Start(fmt.Sprintf("Fetching %d scenario pages...", len(scenarios)))
	entries, err := fetchAll(ctx, svc, scenarios, concurrency)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return err
	}

	if out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d scenarios to %s\n", len(entries), out)
	}
	return nil
}

// fetchAll retrieves every scenario's detail page with bounded concurrency.
// The polite transport enforces the rate limit underneath.
func fetchAll(ctx context.Context, svc scenarioGetter, scenarios []models.ScenarioSummary, concurrency int) ([]exportEntry, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	entries := make([]exportEntry, len(scenarios))
	for i, sc := range scenarios {
		g.Go(func() error {
			detail, err := svc.GetScenario(ctx, sc.ID)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.ID, err)
			}
			entries[i] = exportEntry{ID: sc.ID, Name: sc.Name, Content: detail.Content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

type scenarioGetter interface {
	GetScenario(ctx context.Context, id string) (*models.ScenarioDetail, error)
}
