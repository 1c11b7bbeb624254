package models

// ScenarioSummary is a single entry from the arkhamcentral.com fan-content
// listing page. The ID is the URL slug of the scenario's own page.
type ScenarioSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScenarioDetail is the content of one scenario page. Content is the raw
// HTML fragment of the page's main content region, unmodified.
type ScenarioDetail struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
