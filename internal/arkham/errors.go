package arkham

import "errors"

// Failure kinds for scenario retrieval. Callers classify with errors.Is and
// map to transport status codes at the edge.
var (
	// ErrValidation marks a malformed request (bad search type, empty id).
	ErrValidation = errors.New("invalid request")

	// ErrNotSupported marks a well-formed request for data arkhamcentral.com
	// does not host (cards, investigators). Returned before any network call.
	ErrNotSupported = errors.New("not supported")

	// ErrNotFound marks a scenario id with no page upstream.
	ErrNotFound = errors.New("scenario not found")

	// ErrUpstream marks a transport failure or an unrecognizable upstream
	// page. Bad-gateway semantics: the fault is arkhamcentral.com's side.
	ErrUpstream = errors.New("upstream error")
)
