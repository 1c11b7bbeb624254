package polite

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotsChecker(t *testing.T) {
	var robotsFetches atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/robots.txt", r.URL.Path)
		robotsFetches.Add(1)
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	t.Cleanup(srv.Close)

	checker := NewRobotsChecker(srv.Client(), true)

	allowed, err := checker.IsAllowed("arkham-central-mcp/1.0", srv.URL+"/index.php/the-gathering/")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = checker.IsAllowed("arkham-central-mcp/1.0", srv.URL+"/private/secret")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Rules are cached per origin.
	assert.Equal(t, int64(1), robotsFetches.Load())
}

func TestRobotsCheckerDisabled(t *testing.T) {
	checker := NewRobotsChecker(nil, false)

	allowed, err := checker.IsAllowed("ua", "https://arkhamcentral.com/private/anything")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRobotsCheckerUnreachableAllows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := srv.Client()
	srv.Close() // robots.txt now unreachable

	checker := NewRobotsChecker(client, true)

	allowed, err := checker.IsAllowed("ua", srv.URL+"/index.php/the-gathering/")
	require.NoError(t, err)
	assert.True(t, allowed)
}
