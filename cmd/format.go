package cmd

import (
	"fmt"
	"os"

	"github.com/dunwich/arkham-central-mcp/internal/models"
)

// printScenarioTable prints scenario summaries in a human-friendly layout.
func printScenarioTable(scenarios []models.ScenarioSummary) {
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stdout, "No scenarios found.")
		return
	}
	for i, sc := range scenarios {
		fmt.Fprintf(os.Stdout, " %2d. %-50s  %s\n", i+1, truncate(sc.Name, 50), sc.ID)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
