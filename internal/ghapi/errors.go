package ghapi

import (
	"errors"
	"fmt"
)

var (
	// ErrReleaseNotFound reports a 404 from the release-by-tag lookup.
	ErrReleaseNotFound = errors.New("release does not exist")

	// ErrUnauthorized reports a 401 from any API call.
	ErrUnauthorized = errors.New("unauthorized: invalid authentication token")
)

// StatusError is returned for any response status the operation does
// not recognize as success, not-found or unauthorized.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}
