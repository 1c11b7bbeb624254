package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunwich/arkham-central-mcp/internal/arkham"
	"github.com/dunwich/arkham-central-mcp/internal/models"
)

func newTestService(t *testing.T) (*arkham.Service, *atomic.Int64) {
	t.Helper()

	var fetches atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/index.php/fan-created-content-arkham-horror-lcg/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="entry-content">
<a href="/index.php/the-gathering/">The Gathering</a>
<a href="/index.php/midnight-masks/">Midnight Masks</a>
</div></body></html>`))
	})
	mux.HandleFunc("/index.php/the-gathering/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="entry-content"><p>Scenario text.</p></div></body></html>`))
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	return arkham.NewService(srv.Client(), srv.URL), &fetches
}

func callToolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListScenariosTool(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := handleListScenarios(svc)(context.Background(), callToolRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var scenarios []models.ScenarioSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &scenarios))
	assert.Len(t, scenarios, 2)
	assert.Equal(t, "the-gathering", scenarios[0].ID)
}

func TestGetScenarioTool(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := handleGetScenario(svc)(context.Background(), callToolRequest(map[string]any{"id": "the-gathering"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Scenario text.")
}

func TestGetScenarioToolRequiresID(t *testing.T) {
	svc, fetches := newTestService(t)

	result, err := handleGetScenario(svc)(context.Background(), callToolRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, int64(0), fetches.Load())
}

func TestSearchContentTool(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := handleSearchContent(svc)(context.Background(), callToolRequest(map[string]any{
		"type": "scenario",
		"name": "mid",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var scenarios []models.ScenarioSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &scenarios))
	require.Len(t, scenarios, 1)
	assert.Equal(t, "midnight-masks", scenarios[0].ID)
}

func TestSearchContentToolRejectsCardsWithoutFetching(t *testing.T) {
	svc, fetches := newTestService(t)

	for _, typ := range []string{"card", "investigator"} {
		result, err := handleSearchContent(svc)(context.Background(), callToolRequest(map[string]any{"type": typ}))
		require.NoError(t, err)
		assert.True(t, result.IsError, "type %s", typ)
	}
	assert.Equal(t, int64(0), fetches.Load(), "unsupported types must not reach the upstream site")
}
