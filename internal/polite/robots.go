package polite

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

const robotsCacheTTL = 1 * time.Hour

type robotsEntry struct {
	data    *robotstxt.RobotsData
	expires time.Time
}

// RobotsChecker fetches and caches robots.txt rules per origin. Unreachable
// or unparseable robots.txt is treated as allow-all.
type RobotsChecker struct {
	client  *http.Client
	enabled bool

	mu    sync.Mutex
	cache map[string]robotsEntry
}

// NewRobotsChecker creates a checker using the given client for robots.txt
// fetches. The client must not itself route through a Transport holding this
// checker.
func NewRobotsChecker(client *http.Client, enabled bool) *RobotsChecker {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RobotsChecker{
		client:  client,
		enabled: enabled,
		cache:   make(map[string]robotsEntry),
	}
}

// IsAllowed reports whether userAgent may fetch rawURL under the origin's
// robots.txt rules.
func (r *RobotsChecker) IsAllowed(userAgent, rawURL string) (bool, error) {
	if !r.enabled {
		return true, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false, err
	}

	data, err := r.rulesFor(u.Scheme + "://" + u.Host)
	if err != nil {
		return true, nil
	}
	return data.FindGroup(userAgent).Test(u.Path), nil
}

func (r *RobotsChecker) rulesFor(origin string) (*robotstxt.RobotsData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache[origin]; ok && time.Now().Before(e.expires) {
		return e.data, nil
	}

	resp, err := r.client.Get(origin + "/robots.txt")
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.cache[origin] = robotsEntry{data: data, expires: time.Now().Add(robotsCacheTTL)}
	return data, nil
}
