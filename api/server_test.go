package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunwich/arkham-central-mcp/internal/arkham"
	"github.com/dunwich/arkham-central-mcp/internal/models"
)

type stubService struct {
	scenarios []models.ScenarioSummary
	detail    *models.ScenarioDetail
	err       error
}

func (s *stubService) ListScenarios(ctx context.Context) ([]models.ScenarioSummary, error) {
	return s.scenarios, s.err
}

func (s *stubService) GetScenario(ctx context.Context, id string) (*models.ScenarioDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.detail == nil || s.detail.ID != id {
		return nil, fmt.Errorf("%w: %q", arkham.ErrNotFound, id)
	}
	return s.detail, nil
}

func (s *stubService) SearchScenarios(ctx context.Context, name string) ([]models.ScenarioSummary, error) {
	return s.scenarios, s.err
}

func doGet(t *testing.T, svc ScenarioService, path string) (*http.Response, []byte) {
	t.Helper()

	srv := httptest.NewServer(NewServer(svc, nil).Router())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestListScenariosEndpoint(t *testing.T) {
	svc := &stubService{scenarios: []models.ScenarioSummary{
		{ID: "the-gathering", Name: "The Gathering"},
		{ID: "midnight-masks", Name: "Midnight Masks"},
	}}

	resp, body := doGet(t, svc, "/scenarios")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got []models.ScenarioSummary
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, svc.scenarios, got)
}

func TestGetScenarioEndpoint(t *testing.T) {
	svc := &stubService{detail: &models.ScenarioDetail{ID: "the-gathering", Content: "<div>content</div>"}}

	resp, body := doGet(t, svc, "/scenarios/the-gathering")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.ScenarioDetail
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, *svc.detail, got)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		path       string
		wantStatus int
		wantKind   string
	}{
		{"not found", nil, "/scenarios/unknown-id", http.StatusNotFound, "not_found"},
		{"upstream failure", fmt.Errorf("%w: status 503", arkham.ErrUpstream), "/scenarios", http.StatusBadGateway, "upstream_error"},
		{"card search not supported", nil, "/search?type=card", http.StatusBadRequest, "not_supported"},
		{"investigator search not supported", nil, "/search?type=investigator", http.StatusBadRequest, "not_supported"},
		{"unknown search type", nil, "/search?type=spell", http.StatusBadRequest, "validation"},
		{"missing search type", nil, "/search", http.StatusBadRequest, "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doGet(t, &stubService{err: tt.err}, tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var envelope map[string]string
			require.NoError(t, json.Unmarshal(body, &envelope))
			assert.Equal(t, tt.wantKind, envelope["error"])
			assert.NotEmpty(t, envelope["message"])
		})
	}
}

func TestSearchUpstreamErrorIsBadGateway(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: connection refused", arkham.ErrUpstream)}

	resp, _ := doGet(t, svc, "/search?type=scenario&name=mid")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	resp, body := doGet(t, &stubService{}, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

// TestSearchEndToEnd wires the real retrieval service against a fake
// upstream site and exercises the full request path.
func TestSearchEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.php/fan-created-content-arkham-horror-lcg/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><body><div class="entry-content">
<a href="/index.php/gathering/">The Gathering</a>
<a href="/index.php/midnight-masks/">Midnight Masks</a>
</div></body></html>`))
	}))
	t.Cleanup(upstream.Close)

	svc := arkham.NewService(upstream.Client(), upstream.URL)

	resp, body := doGet(t, svc, "/search?type=scenario&name=mid")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":"midnight-masks","name":"Midnight Masks"}]`, string(body))
}
