// Package polite wraps outbound requests with the courtesies a scraper of a
// small fan site owes it: a stable identifying User-Agent, robots.txt
// compliance, token-bucket rate limiting, and optional inter-request delay.
package polite

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Transport is an http.RoundTripper applying, in order:
// robots check → rate limiter → delay → send.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
	Robots    *RobotsChecker
	Limiter   *rate.Limiter
	Delay     *Delay
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" && t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	if t.Robots != nil {
		allowed, err := t.Robots.IsAllowed(t.UserAgent, req.URL.String())
		if err == nil && !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", req.URL.Path)
		}
	}

	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if t.Delay != nil {
		if err := t.Delay.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("delay: %w", err)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
