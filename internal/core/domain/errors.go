package domain

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the content access layer. NotFound deliberately covers
// both a missing redirect and a malformed stored reference so a visitor
// cannot distinguish the two; credential problems stay AccessDenied.
var (
	ErrParseFailure  = errors.New("malformed repository reference")
	ErrNotFound      = errors.New("repository not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrDecodeFailure = errors.New("could not decode file content")
)

// UpstreamError is a non-2xx response from the upstream API. The body is
// never parsed on failure; only the status travels with the error.
type UpstreamError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error: %d (%s)", e.StatusCode, e.URL)
}
