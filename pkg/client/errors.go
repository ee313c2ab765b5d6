package client

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// APIError is an error response from the Confluence REST API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("confluence API error (status %d): %s", e.StatusCode, e.Message)
}

// IsBadRequest reports whether err carries a 400 status, which Confluence
// uses for syntactically invalid CQL among other client mistakes.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
