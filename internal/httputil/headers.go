package httputil

import "net/http"

// RequestHeaders returns the standard headers for upstream page fetches.
// The User-Agent is left to the transport so the client identifies itself
// consistently, robots.txt checks included.
func RequestHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Accept-Encoding", "gzip, br")
	return h
}
