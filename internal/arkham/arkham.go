// Package arkham retrieves fan-created Arkham Horror LCG scenario content
// from arkhamcentral.com. Nothing is cached: the upstream site is the single
// source of truth and every call re-fetches.
package arkham

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dunwich/arkham-central-mcp/internal/httputil"
	"github.com/dunwich/arkham-central-mcp/internal/models"
)

const (
	// DefaultBaseURL is the live upstream site.
	DefaultBaseURL = "https://arkhamcentral.com"

	listingPath = "/index.php/fan-created-content-arkham-horror-lcg/"
)

// Service talks to arkhamcentral.com and produces parsed scenario entities.
// Each ListScenarios or GetScenario call performs exactly one page fetch.
type Service struct {
	client  *http.Client
	baseURL string
}

// NewService creates a Service on the given client. A nil client gets
// pooled defaults; an empty baseURL targets the live site.
func NewService(client *http.Client, baseURL string) *Service {
	if client == nil {
		client = httputil.NewClient(nil, 0)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// ListScenarios fetches the fan-content listing page and returns its
// scenarios in page order.
func (s *Service) ListScenarios(ctx context.Context) ([]models.ScenarioSummary, error) {
	listingURL := s.baseURL + listingPath

	resp, err := s.get(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch listing: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: listing returned status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: read listing: %v", ErrUpstream, err)
	}

	scenarios, err := parseListing(body, listingURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse listing: %v", ErrUpstream, err)
	}
	if len(scenarios) == 0 {
		// The listing always carries scenario links; none means the page
		// layout changed underneath us.
		return nil, fmt.Errorf("%w: no scenario links found in listing", ErrUpstream)
	}
	return scenarios, nil
}

// GetScenario fetches one scenario page by its slug and returns the raw HTML
// of its content region.
func (s *Service) GetScenario(ctx context.Context, id string) (*models.ScenarioDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: scenario id is required", ErrValidation)
	}
	if strings.ContainsAny(id, "/?#") {
		return nil, fmt.Errorf("%w: malformed scenario id %q", ErrValidation, id)
	}

	resp, err := s.get(ctx, s.baseURL+scenarioPathPrefix+url.PathEscape(id)+"/")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch scenario %q: %v", ErrUpstream, id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: scenario %q returned status %d", ErrUpstream, id, resp.StatusCode)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: read scenario %q: %v", ErrUpstream, id, err)
	}

	content, ok := parseContent(body)
	if !ok {
		// A 200 page with no content region is WordPress serving a
		// placeholder, not scenario data.
		return nil, fmt.Errorf("%w: %q has no scenario content", ErrNotFound, id)
	}

	return &models.ScenarioDetail{ID: id, Content: content}, nil
}

// SearchScenarios returns scenarios whose display name contains the query,
// case-insensitively. An empty query returns the full listing. The match
// runs over the single listing fetch; no per-scenario pages are touched.
func (s *Service) SearchScenarios(ctx context.Context, name string) ([]models.ScenarioSummary, error) {
	scenarios, err := s.ListScenarios(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return scenarios, nil
	}

	query := strings.ToLower(name)
	matched := make([]models.ScenarioSummary, 0, len(scenarios))
	for _, sc := range scenarios {
		if strings.Contains(strings.ToLower(sc.Name), query) {
			matched = append(matched, sc)
		}
	}
	return matched, nil
}

func (s *Service) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, vals := range httputil.RequestHeaders() {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	return s.client.Do(req)
}
